package main

import (
	"fmt"
	"strconv"

	"github.com/astef/bitset"
	"github.com/astef/bitset/interop"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var commands = []*cli.Command{
	{
		Name:      "inspect",
		Usage:     "Print size, population count and storage of a literal",
		ArgsUsage: "<literal>",
		Action:    inspect,
	},
	{
		Name:      "combine",
		Usage:     "Combine two literals; the result has the size of the left one",
		ArgsUsage: "<left> <right>",
		Flags:     []cli.Flag{opFlag},
		Action:    combine,
	},
	{
		Name:      "not",
		Usage:     "Print the complement of a literal",
		ArgsUsage: "<literal>",
		Action:    complement,
	},
	{
		Name:      "resize",
		Usage:     "Truncate or zero-extend a literal",
		ArgsUsage: "<literal>",
		Flags:     []cli.Flag{sizeFlag},
		Action:    resize,
	},
	{
		Name:      "get",
		Usage:     "Print one bit; negative indices count from the end (pass -- before them)",
		ArgsUsage: "<literal> <index>",
		Action:    get,
	},
	{
		Name:      "convert",
		Usage:     "Print the set bits in another library's representation",
		ArgsUsage: "<literal>",
		Flags:     []cli.Flag{toFlag},
		Action:    convert,
	},
}

func parseArgs(ctx *cli.Context, n int) ([]*bitset.BitSet, error) {
	if ctx.NArg() != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, ctx.NArg())
	}
	sets := make([]*bitset.BitSet, n)
	for i := 0; i < n; i++ {
		bs, err := bitset.Parse(ctx.Args().Get(i))
		if err != nil {
			return nil, err
		}
		sets[i] = bs
	}
	return sets, nil
}

func inspect(ctx *cli.Context) error {
	sets, err := parseArgs(ctx, 1)
	if err != nil {
		return err
	}
	bs := sets[0]
	wordCount := (uint64(bs.Size()) + 63) / 64

	out := ctx.App.Writer
	fmt.Fprintf(out, "bits:    %v\n", bs)
	fmt.Fprintf(out, "size:    %d\n", bs.Size())
	fmt.Fprintf(out, "count:   %d\n", bs.Count())
	fmt.Fprintf(out, "first-0: %s\n", position(bs, false))
	fmt.Fprintf(out, "first-1: %s\n", position(bs, true))
	fmt.Fprintf(out, "words:   %d (%s)\n", wordCount, humanize.Bytes(wordCount*8))
	return nil
}

func position(bs *bitset.BitSet, value bool) string {
	i := bs.IndexOf(value)
	if i == bs.Size() {
		return "none"
	}
	return strconv.FormatUint(uint64(i), 10)
}

func combine(ctx *cli.Context) error {
	sets, err := parseArgs(ctx, 2)
	if err != nil {
		return err
	}
	left, right := sets[0], sets[1]

	op := ctx.String(opFlag.Name)
	if op == "" {
		op = ctx.String(DefaultOpFlag.Name)
	}
	fields := logrus.Fields{"op": op, "left": left.Size(), "right": right.Size()}
	if left.Size() != right.Size() {
		log.WithFields(fields).Warn("Operand sizes differ, right operand resized to the left size")
	} else {
		log.WithFields(fields).Debug("Combining")
	}

	var result *bitset.BitSet
	switch op {
	case "and":
		result = bitset.And(left, right)
	case "or":
		result = bitset.Or(left, right)
	case "xor":
		result = bitset.Xor(left, right)
	default:
		return fmt.Errorf("unknown operator %s", op)
	}
	fmt.Fprintln(ctx.App.Writer, result)
	return nil
}

func complement(ctx *cli.Context) error {
	sets, err := parseArgs(ctx, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, bitset.Not(sets[0]))
	return nil
}

func resize(ctx *cli.Context) error {
	sets, err := parseArgs(ctx, 1)
	if err != nil {
		return err
	}
	size := ctx.Uint(sizeFlag.Name)
	if uint64(size) > uint64(^uint32(0)) {
		return errors.Wrapf(bitset.ErrOutOfBounds, "size %d exceeds the maximum", size)
	}
	log.WithFields(logrus.Fields{"from": sets[0].Size(), "to": size}).Debug("Resizing")
	fmt.Fprintln(ctx.App.Writer, sets[0].Resize(uint32(size)))
	return nil
}

func get(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", ctx.NArg())
	}
	bs, err := bitset.Parse(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	index, err := strconv.ParseInt(ctx.Args().Get(1), 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse index")
	}
	v, err := bs.Get(index)
	if err != nil {
		return err
	}
	if v {
		fmt.Fprintln(ctx.App.Writer, 1)
	} else {
		fmt.Fprintln(ctx.App.Writer, 0)
	}
	return nil
}

func convert(ctx *cli.Context) error {
	sets, err := parseArgs(ctx, 1)
	if err != nil {
		return err
	}
	bs := sets[0]
	out := ctx.App.Writer
	switch to := ctx.String(toFlag.Name); to {
	case "roaring":
		fmt.Fprintln(out, interop.ToRoaring(bs).String())
	case "bits-and-blooms":
		fmt.Fprintln(out, interop.ToBitsAndBlooms(bs).String())
	case "bitlist":
		fmt.Fprintf(out, "%#x\n", []byte(interop.ToBitlist(bs)))
	default:
		return fmt.Errorf("unknown representation %s", to)
	}
	return nil
}
