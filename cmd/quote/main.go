// Command quote prices beverage orders from the command line.
//
//	quote "Chai, -sugar" "Coffee"
//	printf 'Mohito\nChai, -milk\n' | quote -batch
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kiwari-pos/barista/internal/logging"
	"github.com/kiwari-pos/barista/internal/pricing"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	logger := logging.NewWithWriter(os.Stderr, "console", os.Getenv("LOG_LEVEL"))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, logger))
}

// run prices every order and returns the process exit status.
func run(args []string, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) int {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	batch := fs.Bool("batch", false, "Price all orders together; any invalid order fails the batch")
	if err := fs.Parse(args); err != nil {
		logger.Error().Err(err).Msg("parse flags")
		return 2
	}

	orders := fs.Args()
	if len(orders) == 0 {
		var err error
		orders, err = readLines(stdin)
		if err != nil {
			logger.Error().Err(err).Msg("read orders")
			return 1
		}
	}

	engine := pricing.NewEngine()
	if *batch {
		b, err := engine.QuoteAll(pricing.Texts(orders))
		if err != nil {
			logger.Error().Err(err).Str("code", string(pricing.KindOf(err))).Msg("batch rejected")
			return 1
		}
		for i, q := range b.Quotes {
			fmt.Fprintf(stdout, "%s\t%s\n", q.Total.StringFixed(2), orders[i])
		}
		fmt.Fprintf(stdout, "%s\tTOTAL\n", b.Total.StringFixed(2))
		return 0
	}

	status := 0
	total := decimal.Zero
	for _, order := range orders {
		price, err := engine.PriceOrder(order)
		if err != nil {
			logger.Error().Err(err).Str("order", order).Str("code", string(pricing.KindOf(err))).Msg("order rejected")
			status = 1
			continue
		}
		total = total.Add(price)
		fmt.Fprintf(stdout, "%s\t%s\n", price.StringFixed(2), order)
	}
	fmt.Fprintf(stdout, "%s\tTOTAL\n", total.StringFixed(2))
	return status
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
