package mcpserver

// HymnFormatContract describes the canonical hymn JSON format that LLM
// consumers should follow when reading or writing hymns.
const HymnFormatContract = `# Cifra Hymn Format Contract

Every hymn in the library is one UTF-8 JSON file named ` + "`" + `<code>.json` + "`" + `.

## Structure

` + "```" + `json
{
  "code": "042",
  "title": "Santo, Santo, Santo",
  "version": "1",
  "level": 2,
  "rhythm": "valsa",
  "tone": { "original": "G", "selected": "G" },
  "measures": { "sigN": 3, "sigD": 4 },
  "time": { "duration": 180, "introDuration": 12, "text": "3:00" },
  "score": {
    "introduction": ["G", "D|x2", "..."],
    "stanzas": [
      { "code": "1", "type": "verse", "text": ["[G]Santo, santo, [D]santo"] },
      { "code": "Coro", "type": "chorus", "text": ["[C]Glória a [G]Deus, [D7|x2]amém"] },
      { "type": "ref", "ref": "score.stanzas[1]" }
    ]
  }
}
` + "```" + `

## Rules

1. **code** matches ` + "`" + `^[A-Za-z0-9_-]+$` + "`" + ` and equals the file name stem.
2. **tone.original** is the key the hymn was written in; it must start with a
   note name (A-G). **tone.selected** is the key it is currently shown in.
3. **level** is a difficulty from 1 to 5 (omit when unknown).
4. **Chord markers** sit inline in lyric lines: ` + "`" + `[Chord]word` + "`" + ` or
   ` + "`" + `[Chord|annotation]word` + "`" + `. The chord sounds on the first syllable
   of the word that follows it. Lyrics outside markers are never rewritten.
5. **Chord names** are a root (A-G with optional b or #), an optional quality
   (m, 7, m7, 7M, sus4, °, m7(5-), 6, 9) and an optional slash bass
   (` + "`" + `C/E` + "`" + `).
6. **Introduction** entries are bare chord tokens, optionally with an
   annotation after "|"; "..." and "-" are placeholders, not chords.
7. **Stanza type** is one of verse, chorus, ref. A ref stanza has no text of
   its own and points at another stanza with ` + "`" + `score.stanzas[n]` + "`" + `
   (zero-based). Refs to missing stanzas display as empty.
8. **Filler** "_" after a word only widens it under a long chord label; it is
   not part of the lyrics.

## Keys

Key selection uses twelve keys: Ab A Bb B C Db D Eb E F Gb G. Transposed
chords are spelled with sharps (C#, D#, F#, G#, A#).

## Recordings

Recordings live in the library's ` + "`" + `audio/` + "`" + ` directory (flat; .mp3, .m4a,
.ogg, .wav) and are uploaded with the ` + "`" + `upload_audio` + "`" + ` tool. Name them after
the hymn code (` + "`" + `042.mp3` + "`" + `).
`
