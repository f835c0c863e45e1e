package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/img2bas"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Usage: "target width, 0 keeps the source width",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "target height, 0 keeps the source height",
		},
		&cli.BoolFlag{
			Name:  "stretch",
			Usage: "stretch to the target size instead of letterboxing",
		},
		&cli.StringFlag{
			Name:  "bg",
			Value: "0,0,0",
			Usage: "letterbox background as R,G,B",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce to at most this many colors, 0 keeps them all",
		},
		&cli.BoolFlag{
			Name:  "dither",
			Usage: "apply Floyd-Steinberg dithering while reducing colors",
		},
		&cli.IntFlag{
			Name:  "offset-x",
			Usage: "horizontal drawing offset",
		},
		&cli.IntFlag{
			Name:  "offset-y",
			Usage: "vertical drawing offset",
		},
		&cli.StringFlag{
			Name:  "title",
			Value: "Image Draw",
			Usage: "program title",
		},
		&cli.BoolFlag{
			Name:  "no-call",
			Usage: "don't call DrawImage at the end of the program",
		},
	}
}

func lineFlags() []cli.Flag {
	return append(pipelineFlags(),
		&cli.StringFlag{
			Name:  "author",
			Usage: "program author",
		},
		&cli.IntFlag{
			Name:  "comment-rate",
			Value: 20,
			Usage: "emit a REM marker every n rows, 0 disables them",
		},
		&cli.BoolFlag{
			Name:  "no-header",
			Usage: "emit only the drawing statements",
		},
	)
}

func options(c *cli.Context, paletted bool) (img2bas.Options, error) {
	bg, err := img2bas.ParseRGB(c.String("bg"))
	if err != nil {
		return img2bas.Options{}, err
	}

	return img2bas.Options{
		Width:       c.Int("width"),
		Height:      c.Int("height"),
		Stretch:     c.Bool("stretch"),
		Background:  bg,
		Colors:      c.Int("colors"),
		Dither:      c.Bool("dither"),
		Paletted:    paletted,
		Title:       c.String("title"),
		Author:      c.String("author"),
		OffsetX:     c.Int("offset-x"),
		OffsetY:     c.Int("offset-y"),
		CommentRate: c.Int("comment-rate"),
		NoHeader:    c.Bool("no-header"),
		NoCall:      c.Bool("no-call"),
	}, nil
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func convert(c *cli.Context, paletted bool) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	opts, err := options(c, paletted)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	in, err := os.Open(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer in.Close()

	m, _, err := image.Decode(in)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	out, err := os.Create(c.Args().Get(1))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer out.Close()

	if err := img2bas.New(opts, newLogger(c)).Convert(out, m); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "img2bas"
	app.Usage = "Convert images to MMBasic draw programs"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "line",
			Usage:       "Emit one LINE statement per run",
			Description: "",
			ArgsUsage:   "IMAGE PROGRAM",
			Flags:       lineFlags(),
			Action: func(c *cli.Context) error {
				return convert(c, false)
			},
		},
		{
			Name:        "data",
			Usage:       "Emit a paletted READ/DATA program",
			Description: "",
			ArgsUsage:   "IMAGE PROGRAM",
			Flags:       pipelineFlags(),
			Action: func(c *cli.Context) error {
				return convert(c, true)
			},
		},
		{
			Name:      "batch",
			Usage:     "Convert every image under a directory",
			ArgsUsage: "DIRECTORY",
			Flags: append(pipelineFlags(), &cli.BoolFlag{
				Name:  "paletted",
				Usage: "emit paletted READ/DATA programs",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c, c.Bool("paletted"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := img2bas.New(opts, newLogger(c)).Batch(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
