package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"

	"github.com/ulikunitz/fixtree"
	"github.com/ulikunitz/fixtree/artifact"
	"github.com/ulikunitz/fixtree/internal/xlog"
)

// Default file names used by all commands.
const (
	defaultInput    = "input_image.jpg"
	defaultArtifact = "compressed_image.txt"
	defaultOutput   = "decompressed_image"
)

// errHelp is returned if the help for a command has been printed.
var errHelp = errors.New("help requested")

const encodeUsage = `Usage: fixtree encode [OPTION]... [FILE]
Encode FILE (default input_image.jpg) into a bitstring.

  -C, --cap            limit the bitstring to 2048 characters
  -F, --format=FORMAT  artifact format: auto, text, xz, zstd or packed;
                       auto uses the extension of the output file
  -f, --force          overwrite the output file
  -h, --help           give this help
  -l, --limit=N        limit the bitstring to N characters (0: no limit)
  -o, --output=FILE    output file (default compressed_image.txt)
  -v, --verbose        verbose mode
`

const decodeUsage = `Usage: fixtree decode [OPTION]... [FILE]
Decode the bitstring FILE (default compressed_image.txt) into an image.

  -F, --image-format=F  image format: png, jpeg, gif, bmp or tiff; the
                        default is given by the output file extension
  -h, --help            give this help
      --like=IMAGE      use the width and height of IMAGE
  -o, --output=FILE     output file (default decompressed_image.png)
  -p, --policy=POLICY   handling of characters other than 0 and 1:
                        lenient (default) or strict
  -s, --shape=SHAPE     square (default) or WxH
  -v, --verbose         verbose mode
`

const runUsage = `Usage: fixtree run [OPTION]... [FILE]
Encode FILE (default input_image.jpg), store the bitstring, reload and
decode it into an image using the format of FILE and report the mean
squared error between both images. Existing output files are replaced.

  -a, --artifact=FILE  bitstring file (default compressed_image.txt)
  -C, --cap            limit the bitstring to 2048 characters
  -h, --help           give this help
  -L, --like-input     use the width and height of FILE for the image
  -l, --limit=N        limit the bitstring to N characters (0: no limit)
  -o, --output=FILE    image file (default decompressed_image.<ext>)
  -p, --policy=POLICY  lenient (default) or strict
  -v, --verbose        verbose mode
`

const codesUsage = `Usage: fixtree codes [OPTION]...
Print the code table of the fixed tree.

  -a, --adaptive=FILE  print in addition the code table of a Huffman tree
                       built from the symbol frequencies of FILE
  -h, --help           give this help
  -v, --verbose        dump the frequencies
`

// options collects the settings of all commands.
type options struct {
	output      string
	artifact    string
	limit       int
	format      artifact.Format
	force       bool
	policy      fixtree.Policy
	shape       string
	like        string
	imageFormat string
}

// newFlagSet creates the flag set for a command.
func newFlagSet(name, usage string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	return fs
}

// setVerbose switches the debug output on.
func setVerbose(on bool) {
	if !on {
		return
	}
	xlog.SetLevel(xlog.Debugging)
	fixtree.SetDebug(os.Stderr)
}

// fileArg returns the single file argument or the default.
func fileArg(fs *pflag.FlagSet, def string) (string, error) {
	switch fs.NArg() {
	case 0:
		return def, nil
	case 1:
		return fs.Arg(0), nil
	}
	return "", fmt.Errorf("%s: only one file argument supported",
		fs.Arg(1))
}

// limitOf combines the limit and cap flags.
func limitOf(limit int, capped bool) (int, error) {
	if limit < 0 {
		return 0, errors.New("limit must not be negative")
	}
	if capped && (limit == 0 || limit > fixtree.MaxEncodedLen) {
		limit = fixtree.MaxEncodedLen
	}
	return limit, nil
}

func encodeCmd(w io.Writer, args []string) error {
	fs := newFlagSet("encode", encodeUsage)
	var (
		help    = fs.BoolP("help", "h", false, "")
		capped  = fs.BoolP("cap", "C", false, "")
		format  = fs.StringP("format", "F", "auto", "")
		force   = fs.BoolP("force", "f", false, "")
		limit   = fs.IntP("limit", "l", 0, "")
		output  = fs.StringP("output", "o", defaultArtifact, "")
		verbose = fs.BoolP("verbose", "v", false, "")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fmt.Fprint(w, encodeUsage)
		return errHelp
	}
	setVerbose(*verbose)
	in, err := fileArg(fs, defaultInput)
	if err != nil {
		return err
	}
	opts := &options{output: *output, force: *force}
	if opts.limit, err = limitOf(*limit, *capped); err != nil {
		return err
	}
	if opts.format, err = artifact.ParseFormat(*format); err != nil {
		return err
	}
	res, err := encodeFile(in, opts.output, opts)
	if err != nil {
		return err
	}
	res.report(w)
	return nil
}

func decodeCmd(w io.Writer, args []string) error {
	fs := newFlagSet("decode", decodeUsage)
	var (
		help        = fs.BoolP("help", "h", false, "")
		imageFormat = fs.StringP("image-format", "F", "", "")
		like        = fs.String("like", "", "")
		output      = fs.StringP("output", "o", defaultOutput+".png", "")
		policy      = fs.StringP("policy", "p", "lenient", "")
		shape       = fs.StringP("shape", "s", "square", "")
		verbose     = fs.BoolP("verbose", "v", false, "")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fmt.Fprint(w, decodeUsage)
		return errHelp
	}
	setVerbose(*verbose)
	in, err := fileArg(fs, defaultArtifact)
	if err != nil {
		return err
	}
	opts := &options{
		artifact:    in,
		output:      *output,
		shape:       *shape,
		like:        *like,
		imageFormat: *imageFormat,
	}
	if opts.policy, err = fixtree.ParsePolicy(*policy); err != nil {
		return err
	}
	g, err := decodeFile(opts)
	if err != nil {
		return err
	}
	if err = writeImage(g, opts); err != nil {
		return err
	}
	fmt.Fprintf(w, "decoded %d symbols into %s image %s\n",
		len(g.Cells), g.Shape, opts.output)
	return nil
}

func runCmd(w io.Writer, args []string) error {
	fs := newFlagSet("run", runUsage)
	var (
		help      = fs.BoolP("help", "h", false, "")
		art       = fs.StringP("artifact", "a", defaultArtifact, "")
		capped    = fs.BoolP("cap", "C", false, "")
		likeInput = fs.BoolP("like-input", "L", false, "")
		limit     = fs.IntP("limit", "l", 0, "")
		output    = fs.StringP("output", "o", "", "")
		policy    = fs.StringP("policy", "p", "lenient", "")
		verbose   = fs.BoolP("verbose", "v", false, "")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fmt.Fprint(w, runUsage)
		return errHelp
	}
	setVerbose(*verbose)
	in, err := fileArg(fs, defaultInput)
	if err != nil {
		return err
	}
	opts := &options{
		artifact: *art,
		output:   *output,
		force:    true,
		shape:    "square",
	}
	if opts.output == "" {
		opts.output = defaultOutput + filepath.Ext(in)
	}
	if *likeInput {
		opts.like = in
	}
	if opts.limit, err = limitOf(*limit, *capped); err != nil {
		return err
	}
	if opts.policy, err = fixtree.ParsePolicy(*policy); err != nil {
		return err
	}
	res, err := runPipeline(in, opts)
	if err != nil {
		return err
	}
	res.encode.report(w)
	fmt.Fprintln(w, "Mean Squared Error (MSE) between the original and "+
		"decompressed images:", res.mse)
	return nil
}

func codesCmd(w io.Writer, args []string) error {
	fs := newFlagSet("codes", codesUsage)
	var (
		help     = fs.BoolP("help", "h", false, "")
		adaptive = fs.StringP("adaptive", "a", "", "")
		verbose  = fs.BoolP("verbose", "v", false, "")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fmt.Fprint(w, codesUsage)
		return errHelp
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: no file arguments supported", fs.Arg(0))
	}
	fmt.Fprint(w, fixtree.FixedCodes())
	if *adaptive == "" {
		return nil
	}
	data, err := os.ReadFile(*adaptive)
	if err != nil {
		return err
	}
	freqs := fixtree.Frequencies(data)
	if *verbose {
		pretty.Fprintf(w, "%# v\n", freqs)
	}
	t := fixtree.FrequencyTree(freqs)
	if t == nil {
		return fmt.Errorf("%s: file is empty", *adaptive)
	}
	fmt.Fprintf(w, "\nadaptive codes for %s:\n", *adaptive)
	fmt.Fprint(w, fixtree.Codes(t))
	return nil
}
