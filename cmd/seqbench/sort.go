// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlseq"
	"github.com/katalvlaran/lvlseq/order"
)

func newSortCmd() *cobra.Command {
	var desc, useHeap bool
	cmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "Sort integers from the arguments, or from stdin when none are given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				nums []int
				err  error
			)
			if len(args) > 0 {
				nums, err = parseInts(args)
			} else {
				nums, err = readInts(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			less := order.Natural[int]
			if desc {
				less = order.Greater[int]
			}
			if useHeap {
				lvlseq.MakeHeapFunc(nums, less)
				lvlseq.SortHeapFunc(nums, less)
			} else {
				lvlseq.SortFunc(nums, less)
			}
			return writeInts(cmd.OutOrStdout(), nums)
		},
	}
	cmd.Flags().BoolVarP(&desc, "desc", "d", false, "Sort in descending order.")
	cmd.Flags().BoolVar(&useHeap, "heap", false, "Use heapsort instead of introsort.")
	return cmd
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func readInts(in io.Reader) ([]int, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "while reading stdin")
	}
	return parseInts(fields)
}

func writeInts(out io.Writer, nums []int) error {
	strs := make([]string, len(nums))
	for i, v := range nums {
		strs[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(out, strings.Join(strs, " "))
	return err
}
