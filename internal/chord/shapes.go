package chord

// shapes is the static fingering dictionary keyed by sharp-spelled chord
// name. Strings run low E to high e.
var shapes = map[string]Shape{
	"C":       {Frets: [6]int{-1, 3, 2, 0, 1, 0}, Fingers: [6]int{0, 3, 2, 0, 1, 0}},
	"Cm":      {Frets: [6]int{-1, 3, 5, 5, 4, 3}, Fingers: [6]int{0, 1, 3, 4, 2, 1}},
	"C7":      {Frets: [6]int{-1, 3, 2, 3, 1, 0}, Fingers: [6]int{0, 3, 2, 4, 1, 0}},
	"Cm7":     {Frets: [6]int{-1, 3, 5, 3, 4, 3}, Fingers: [6]int{0, 1, 3, 1, 2, 1}},
	"C7M":     {Frets: [6]int{-1, 3, 2, 0, 0, 0}, Fingers: [6]int{0, 3, 2, 0, 0, 0}},
	"Csus4":   {Frets: [6]int{-1, 3, 5, 5, 6, 3}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"C°":      {Frets: [6]int{-1, 3, 4, 5, 4, -1}, Fingers: [6]int{0, 1, 2, 4, 3, 0}},
	"Cm7(5-)": {Frets: [6]int{-1, 3, 4, 3, 4, -1}, Fingers: [6]int{0, 1, 3, 2, 4, 0}},
	"C6":      {Frets: [6]int{-1, 3, 5, 5, 5, 5}, Fingers: [6]int{0, 1, 3, 3, 3, 3}},
	"C9":      {Frets: [6]int{-1, 3, 2, 3, 3, 3}, Fingers: [6]int{0, 2, 1, 3, 3, 3}},

	"C#":       {Frets: [6]int{-1, 4, 6, 6, 6, 4}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"C#m":      {Frets: [6]int{-1, 4, 6, 6, 5, 4}, Fingers: [6]int{0, 1, 3, 4, 2, 1}},
	"C#7":      {Frets: [6]int{-1, 4, 6, 4, 6, 4}, Fingers: [6]int{0, 1, 3, 1, 4, 1}},
	"C#m7":     {Frets: [6]int{-1, 4, 6, 4, 5, 4}, Fingers: [6]int{0, 1, 3, 1, 2, 1}},
	"C#7M":     {Frets: [6]int{-1, 4, 6, 5, 6, 4}, Fingers: [6]int{0, 1, 3, 2, 4, 1}},
	"C#sus4":   {Frets: [6]int{-1, 4, 6, 6, 7, 4}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"C#°":      {Frets: [6]int{-1, 4, 5, 6, 5, -1}, Fingers: [6]int{0, 1, 2, 4, 3, 0}},
	"C#m7(5-)": {Frets: [6]int{-1, 4, 5, 4, 5, -1}, Fingers: [6]int{0, 1, 3, 2, 4, 0}},
	"C#6":      {Frets: [6]int{-1, 4, 6, 6, 6, 6}, Fingers: [6]int{0, 1, 3, 3, 3, 3}},
	"C#9":      {Frets: [6]int{-1, 4, 3, 4, 4, 4}, Fingers: [6]int{0, 2, 1, 3, 3, 3}},

	"D":       {Frets: [6]int{-1, -1, 0, 2, 3, 2}, Fingers: [6]int{0, 0, 0, 1, 3, 2}},
	"Dm":      {Frets: [6]int{-1, -1, 0, 2, 3, 1}, Fingers: [6]int{0, 0, 0, 2, 3, 1}},
	"D7":      {Frets: [6]int{-1, -1, 0, 2, 1, 2}, Fingers: [6]int{0, 0, 0, 2, 1, 3}},
	"Dm7":     {Frets: [6]int{-1, -1, 0, 2, 1, 1}, Fingers: [6]int{0, 0, 0, 2, 1, 1}},
	"D7M":     {Frets: [6]int{-1, -1, 0, 2, 2, 2}, Fingers: [6]int{0, 0, 0, 1, 1, 1}},
	"Dsus4":   {Frets: [6]int{-1, -1, 0, 2, 3, 3}, Fingers: [6]int{0, 0, 0, 1, 3, 4}},
	"D°":      {Frets: [6]int{-1, 5, 6, 7, 6, -1}, Fingers: [6]int{0, 1, 2, 4, 3, 0}},
	"Dm7(5-)": {Frets: [6]int{-1, 5, 6, 5, 6, -1}, Fingers: [6]int{0, 1, 3, 2, 4, 0}},
	"D6":      {Frets: [6]int{-1, 5, 7, 7, 7, 7}, Fingers: [6]int{0, 1, 3, 3, 3, 3}},
	"D9":      {Frets: [6]int{-1, 5, 4, 5, 5, 5}, Fingers: [6]int{0, 2, 1, 3, 3, 3}},

	"D#":       {Frets: [6]int{-1, 6, 8, 8, 8, 6}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"D#m":      {Frets: [6]int{-1, 6, 8, 8, 7, 6}, Fingers: [6]int{0, 1, 3, 4, 2, 1}},
	"D#7":      {Frets: [6]int{-1, 6, 8, 6, 8, 6}, Fingers: [6]int{0, 1, 3, 1, 4, 1}},
	"D#m7":     {Frets: [6]int{-1, 6, 8, 6, 7, 6}, Fingers: [6]int{0, 1, 3, 1, 2, 1}},
	"D#7M":     {Frets: [6]int{-1, 6, 8, 7, 8, 6}, Fingers: [6]int{0, 1, 3, 2, 4, 1}},
	"D#sus4":   {Frets: [6]int{-1, 6, 8, 8, 9, 6}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"D#°":      {Frets: [6]int{-1, 6, 7, 8, 7, -1}, Fingers: [6]int{0, 1, 2, 4, 3, 0}},
	"D#m7(5-)": {Frets: [6]int{-1, 6, 7, 6, 7, -1}, Fingers: [6]int{0, 1, 3, 2, 4, 0}},
	"D#6":      {Frets: [6]int{-1, 6, 8, 8, 8, 8}, Fingers: [6]int{0, 1, 3, 3, 3, 3}},
	"D#9":      {Frets: [6]int{-1, 6, 5, 6, 6, 6}, Fingers: [6]int{0, 2, 1, 3, 3, 3}},

	"E":       {Frets: [6]int{0, 2, 2, 1, 0, 0}, Fingers: [6]int{0, 2, 3, 1, 0, 0}},
	"Em":      {Frets: [6]int{0, 2, 2, 0, 0, 0}, Fingers: [6]int{0, 2, 3, 0, 0, 0}},
	"E7":      {Frets: [6]int{0, 2, 0, 1, 0, 0}, Fingers: [6]int{0, 2, 0, 1, 0, 0}},
	"Em7":     {Frets: [6]int{0, 2, 0, 0, 0, 0}, Fingers: [6]int{0, 2, 0, 0, 0, 0}},
	"E7M":     {Frets: [6]int{0, -1, 1, 1, 0, -1}, Fingers: [6]int{0, 0, 2, 3, 0, 0}},
	"Esus4":   {Frets: [6]int{0, 2, 2, 2, 0, 0}, Fingers: [6]int{0, 2, 3, 4, 0, 0}},
	"E°":      {Frets: [6]int{-1, 7, 8, 9, 8, -1}, Fingers: [6]int{0, 1, 2, 4, 3, 0}},
	"Em7(5-)": {Frets: [6]int{-1, 7, 8, 7, 8, -1}, Fingers: [6]int{0, 1, 3, 2, 4, 0}},
	"E6":      {Frets: [6]int{0, 2, 2, 1, 2, 0}, Fingers: [6]int{0, 1, 2, 1, 3, 0}},
	"E9":      {Frets: [6]int{0, 2, 0, 1, 0, 2}, Fingers: [6]int{0, 1, 0, 2, 0, 3}},

	"F":       {Frets: [6]int{1, 3, 3, 2, 1, 1}, Fingers: [6]int{1, 3, 4, 2, 1, 1}},
	"Fm":      {Frets: [6]int{1, 3, 3, 1, 1, 1}, Fingers: [6]int{1, 3, 4, 1, 1, 1}},
	"F7":      {Frets: [6]int{1, 3, 1, 2, 1, 1}, Fingers: [6]int{1, 3, 1, 2, 1, 1}},
	"Fm7":     {Frets: [6]int{1, 3, 1, 1, 1, 1}, Fingers: [6]int{1, 3, 1, 1, 1, 1}},
	"F7M":     {Frets: [6]int{1, -1, 2, 2, 1, -1}, Fingers: [6]int{1, 0, 3, 4, 2, 0}},
	"Fsus4":   {Frets: [6]int{1, 3, 3, 3, 1, 1}, Fingers: [6]int{1, 2, 3, 4, 1, 1}},
	"F°":      {Frets: [6]int{1, -1, 0, 1, 0, -1}, Fingers: [6]int{2, 0, 0, 3, 0, 0}},
	"Fm7(5-)": {Frets: [6]int{1, -1, 1, 1, 0, -1}, Fingers: [6]int{2, 0, 3, 4, 0, 0}},
	"F6":      {Frets: [6]int{1, 3, 3, 2, 3, 1}, Fingers: [6]int{1, 2, 3, 1, 4, 1}},
	"F9":      {Frets: [6]int{1, 3, 1, 2, 1, 3}, Fingers: [6]int{1, 2, 1, 3, 1, 4}},

	"F#":       {Frets: [6]int{2, 4, 4, 3, 2, 2}, Fingers: [6]int{1, 3, 4, 2, 1, 1}},
	"F#m":      {Frets: [6]int{2, 4, 4, 2, 2, 2}, Fingers: [6]int{1, 3, 4, 1, 1, 1}},
	"F#7":      {Frets: [6]int{2, 4, 2, 3, 2, 2}, Fingers: [6]int{1, 3, 1, 2, 1, 1}},
	"F#m7":     {Frets: [6]int{2, 4, 2, 2, 2, 2}, Fingers: [6]int{1, 3, 1, 1, 1, 1}},
	"F#7M":     {Frets: [6]int{2, -1, 3, 3, 2, -1}, Fingers: [6]int{1, 0, 3, 4, 2, 0}},
	"F#sus4":   {Frets: [6]int{2, 4, 4, 4, 2, 2}, Fingers: [6]int{1, 2, 3, 4, 1, 1}},
	"F#°":      {Frets: [6]int{2, -1, 1, 2, 1, -1}, Fingers: [6]int{2, 0, 1, 3, 1, 0}},
	"F#m7(5-)": {Frets: [6]int{2, -1, 2, 2, 1, -1}, Fingers: [6]int{2, 0, 3, 4, 1, 0}},
	"F#6":      {Frets: [6]int{2, 4, 4, 3, 4, 2}, Fingers: [6]int{1, 2, 3, 1, 4, 1}},
	"F#9":      {Frets: [6]int{2, 4, 2, 3, 2, 4}, Fingers: [6]int{1, 2, 1, 3, 1, 4}},

	"G":       {Frets: [6]int{3, 2, 0, 0, 0, 3}, Fingers: [6]int{2, 1, 0, 0, 0, 3}},
	"Gm":      {Frets: [6]int{3, 5, 5, 3, 3, 3}, Fingers: [6]int{1, 3, 4, 1, 1, 1}},
	"G7":      {Frets: [6]int{3, 2, 0, 0, 0, 1}, Fingers: [6]int{3, 2, 0, 0, 0, 1}},
	"Gm7":     {Frets: [6]int{3, 5, 3, 3, 3, 3}, Fingers: [6]int{1, 3, 1, 1, 1, 1}},
	"G7M":     {Frets: [6]int{3, -1, 4, 4, 3, -1}, Fingers: [6]int{1, 0, 3, 4, 2, 0}},
	"Gsus4":   {Frets: [6]int{3, 5, 5, 5, 3, 3}, Fingers: [6]int{1, 2, 3, 4, 1, 1}},
	"G°":      {Frets: [6]int{3, -1, 2, 3, 2, -1}, Fingers: [6]int{2, 0, 1, 3, 1, 0}},
	"Gm7(5-)": {Frets: [6]int{3, -1, 3, 3, 2, -1}, Fingers: [6]int{2, 0, 3, 4, 1, 0}},
	"G6":      {Frets: [6]int{3, 5, 5, 4, 5, 3}, Fingers: [6]int{1, 2, 3, 1, 4, 1}},
	"G9":      {Frets: [6]int{3, 5, 3, 4, 3, 5}, Fingers: [6]int{1, 2, 1, 3, 1, 4}},

	"G#":       {Frets: [6]int{4, 6, 6, 5, 4, 4}, Fingers: [6]int{1, 3, 4, 2, 1, 1}},
	"G#m":      {Frets: [6]int{4, 6, 6, 4, 4, 4}, Fingers: [6]int{1, 3, 4, 1, 1, 1}},
	"G#7":      {Frets: [6]int{4, 6, 4, 5, 4, 4}, Fingers: [6]int{1, 3, 1, 2, 1, 1}},
	"G#m7":     {Frets: [6]int{4, 6, 4, 4, 4, 4}, Fingers: [6]int{1, 3, 1, 1, 1, 1}},
	"G#7M":     {Frets: [6]int{4, -1, 5, 5, 4, -1}, Fingers: [6]int{1, 0, 3, 4, 2, 0}},
	"G#sus4":   {Frets: [6]int{4, 6, 6, 6, 4, 4}, Fingers: [6]int{1, 2, 3, 4, 1, 1}},
	"G#°":      {Frets: [6]int{4, -1, 3, 4, 3, -1}, Fingers: [6]int{2, 0, 1, 3, 1, 0}},
	"G#m7(5-)": {Frets: [6]int{4, -1, 4, 4, 3, -1}, Fingers: [6]int{2, 0, 3, 4, 1, 0}},
	"G#6":      {Frets: [6]int{4, 6, 6, 5, 6, 4}, Fingers: [6]int{1, 2, 3, 1, 4, 1}},
	"G#9":      {Frets: [6]int{4, 6, 4, 5, 4, 6}, Fingers: [6]int{1, 2, 1, 3, 1, 4}},

	"A":       {Frets: [6]int{-1, 0, 2, 2, 2, 0}, Fingers: [6]int{0, 0, 1, 2, 3, 0}},
	"Am":      {Frets: [6]int{-1, 0, 2, 2, 1, 0}, Fingers: [6]int{0, 0, 2, 3, 1, 0}},
	"A7":      {Frets: [6]int{-1, 0, 2, 0, 2, 0}, Fingers: [6]int{0, 0, 2, 0, 3, 0}},
	"Am7":     {Frets: [6]int{-1, 0, 2, 0, 1, 0}, Fingers: [6]int{0, 0, 2, 0, 1, 0}},
	"A7M":     {Frets: [6]int{-1, 0, 2, 1, 2, 0}, Fingers: [6]int{0, 0, 2, 1, 3, 0}},
	"Asus4":   {Frets: [6]int{-1, 0, 2, 2, 3, 0}, Fingers: [6]int{0, 0, 1, 2, 3, 0}},
	"A°":      {Frets: [6]int{-1, 0, 1, 2, 1, -1}, Fingers: [6]int{0, 0, 1, 3, 2, 0}},
	"Am7(5-)": {Frets: [6]int{-1, 0, 1, 0, 1, -1}, Fingers: [6]int{0, 0, 2, 0, 3, 0}},
	"A6":      {Frets: [6]int{-1, 0, 2, 2, 2, 2}, Fingers: [6]int{0, 0, 2, 2, 2, 2}},
	"A9":      {Frets: [6]int{5, 7, 5, 6, 5, 7}, Fingers: [6]int{1, 2, 1, 3, 1, 4}},

	"A#":       {Frets: [6]int{-1, 1, 3, 3, 3, 1}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"A#m":      {Frets: [6]int{-1, 1, 3, 3, 2, 1}, Fingers: [6]int{0, 1, 3, 4, 2, 1}},
	"A#7":      {Frets: [6]int{-1, 1, 3, 1, 3, 1}, Fingers: [6]int{0, 1, 3, 1, 4, 1}},
	"A#m7":     {Frets: [6]int{-1, 1, 3, 1, 2, 1}, Fingers: [6]int{0, 1, 3, 1, 2, 1}},
	"A#7M":     {Frets: [6]int{-1, 1, 3, 2, 3, 1}, Fingers: [6]int{0, 1, 3, 2, 4, 1}},
	"A#sus4":   {Frets: [6]int{-1, 1, 3, 3, 4, 1}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"A#°":      {Frets: [6]int{-1, 1, 2, 3, 2, -1}, Fingers: [6]int{0, 1, 2, 4, 3, 0}},
	"A#m7(5-)": {Frets: [6]int{-1, 1, 2, 1, 2, -1}, Fingers: [6]int{0, 1, 3, 2, 4, 0}},
	"A#6":      {Frets: [6]int{-1, 1, 3, 3, 3, 3}, Fingers: [6]int{0, 1, 3, 3, 3, 3}},
	"A#9":      {Frets: [6]int{-1, 1, 0, 1, 1, 1}, Fingers: [6]int{0, 2, 0, 3, 3, 3}},

	"B":       {Frets: [6]int{-1, 2, 4, 4, 4, 2}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"Bm":      {Frets: [6]int{-1, 2, 4, 4, 3, 2}, Fingers: [6]int{0, 1, 3, 4, 2, 1}},
	"B7":      {Frets: [6]int{-1, 2, 4, 2, 4, 2}, Fingers: [6]int{0, 1, 3, 1, 4, 1}},
	"Bm7":     {Frets: [6]int{-1, 2, 4, 2, 3, 2}, Fingers: [6]int{0, 1, 3, 1, 2, 1}},
	"B7M":     {Frets: [6]int{-1, 2, 4, 3, 4, 2}, Fingers: [6]int{0, 1, 3, 2, 4, 1}},
	"Bsus4":   {Frets: [6]int{-1, 2, 4, 4, 5, 2}, Fingers: [6]int{0, 1, 2, 3, 4, 1}},
	"B°":      {Frets: [6]int{-1, 2, 3, 4, 3, -1}, Fingers: [6]int{0, 1, 2, 4, 3, 0}},
	"Bm7(5-)": {Frets: [6]int{-1, 2, 3, 2, 3, -1}, Fingers: [6]int{0, 1, 3, 2, 4, 0}},
	"B6":      {Frets: [6]int{-1, 2, 4, 4, 4, 4}, Fingers: [6]int{0, 1, 3, 3, 3, 3}},
	"B9":      {Frets: [6]int{-1, 2, 1, 2, 2, 2}, Fingers: [6]int{0, 2, 1, 3, 3, 3}},
}
