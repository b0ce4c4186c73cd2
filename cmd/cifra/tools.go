package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/starford/cifra/internal/chord"
	"github.com/starford/cifra/internal/models"
	"github.com/starford/cifra/internal/parser"
	"github.com/starford/cifra/internal/tone"
	"github.com/starford/cifra/internal/transpose"
)

var keyList = strings.Join(tone.Keys[:], " ")

func stderrLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func transposeCommand() *cli.Command {
	return &cli.Command{
		Name:      "transpose",
		Usage:     "Transpose a hymn JSON file to another key",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "Target key (" + keyList + ")", Required: true},
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "Rewrite FILE instead of printing to stdout"},
			&cli.BoolFlag{Name: "strict", Usage: "Fail on chords whose root cannot be parsed"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("transpose: expected one FILE argument")
			}
			path := cmd.Args().First()
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			h, err := models.Decode(data)
			if err != nil {
				return err
			}

			opts := []transpose.Option{transpose.WithLogger(stderrLogger())}
			if cmd.Bool("strict") {
				opts = append(opts, transpose.WithStrict())
			}
			out, err := transpose.Hymn(h, cmd.String("key"), opts...)
			if err != nil {
				return err
			}
			encoded, err := models.Encode(out)
			if err != nil {
				return err
			}
			if cmd.Bool("write") {
				return os.WriteFile(path, encoded, 0o644)
			}
			_, err = os.Stdout.Write(encoded)
			return err
		},
	}
}

func capoCommand() *cli.Command {
	return &cli.Command{
		Name:      "capo",
		Usage:     "Print the capo fret for playing SELECTED shapes in ORIGINAL",
		ArgsUsage: "ORIGINAL SELECTED",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("capo: expected ORIGINAL and SELECTED keys")
			}
			original, selected := cmd.Args().Get(0), cmd.Args().Get(1)
			for _, k := range []string{original, selected} {
				if !tone.IsKey(k) {
					return fmt.Errorf("capo: unknown key %q (keys: %s)", k, keyList)
				}
			}
			fmt.Println(tone.CapoPosition(original, selected))
			return nil
		},
	}
}

func chordCommand() *cli.Command {
	return &cli.Command{
		Name:      "chord",
		Usage:     "Print guitar fingerings (frets low E to high E, x muted)",
		ArgsUsage: "NAME...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "list", Aliases: []string{"l"}, Usage: "List every chord in the dictionary"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if cmd.Bool("list") {
				names = chord.Names()
			}
			if len(names) == 0 {
				return fmt.Errorf("chord: expected at least one NAME")
			}
			for _, name := range names {
				fmt.Println(formatShape(name))
			}
			return nil
		},
	}
}

// formatShape renders "C#m7\tx 4 6 4 5 4", or "?" when no diagram exists.
func formatShape(name string) string {
	shape, ok := chord.Lookup(name)
	if !ok {
		return name + "\t?"
	}
	frets := make([]string, len(shape.Frets))
	for i, f := range shape.Frets {
		if f < 0 {
			frets[i] = "x"
		} else {
			frets[i] = strconv.Itoa(f)
		}
	}
	return name + "\t" + strings.Join(frets, " ")
}

func padCommand() *cli.Command {
	return &cli.Command{
		Name:  "pad",
		Usage: "Read chord-marked lyric lines on stdin and widen words under long chords",
		Action: func(_ context.Context, _ *cli.Command) error {
			return padLines(os.Stdin, os.Stdout)
		},
	}
}

func padLines(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		if _, err := fmt.Fprintln(bw, parser.PadWordsUnderChords(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
