// Package batch runs many trade commands from a file through the
// service concurrently. One command per line; blank lines and lines
// starting with '#' are skipped.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/equinoxial2/vps/internal/logger"
	"github.com/equinoxial2/vps/internal/parser"
	"github.com/equinoxial2/vps/internal/service"
)

const maxParallelCap = 8

// Result summarizes one batch run.
type Result struct {
	Total     int // commands read from the file
	Submitted int // successfully parsed (and submitted unless dry run)
	Rejected  int // commands the parser refused
}

// ProcessFile reads commands from path and runs them through svc.
//
// Behavior:
//   - Parse failures are logged and counted, never fatal: one bad line
//     must not sink the rest of the batch.
//   - In dry-run mode commands are only parsed, nothing reaches the
//     exchange or the audit log.
//   - Submission errors (exchange or transport) cancel the remaining
//     commands and are returned, since they usually mean every further
//     submission would fail too.
//   - Concurrency is clamp(parallel, 1..8), defaulting to min(8, NumCPU).
func ProcessFile(ctx context.Context, path string, svc service.OrderService, parallel int, testnet, dryRun bool) (*Result, error) {
	commands, err := readCommands(path)
	if err != nil {
		return nil, err
	}

	maxParallel := maxParallelCap
	if parallel > 0 {
		if parallel > maxParallelCap {
			parallel = maxParallelCap
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().
		Int("commands", len(commands)).
		Int("max_parallel", maxParallel).
		Bool("dry_run", dryRun).
		Str("file", path).
		Msg("batch start")

	var submitted, rejected atomic.Int64

	// errgroup will cancel siblings on first submission error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, command := range commands {
		line := i + 1
		cmd := command

		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			defer func() { <-sem }()

			if dryRun {
				if _, err := svc.PreviewOrder(cmd); err != nil {
					logger.L().Warn().Int("line", line).Str("command", cmd).Err(err).Msg("command rejected")
					rejected.Add(1)
					return nil
				}
				submitted.Add(1)
				return nil
			}

			res, err := svc.PlaceOrder(gctx, cmd, testnet)
			if err != nil {
				var parseErr *parser.CommandParsingError
				if errors.As(err, &parseErr) {
					logger.L().Warn().Int("line", line).Str("command", cmd).Err(err).Msg("command rejected")
					rejected.Add(1)
					return nil
				}
				logger.L().Error().Int("line", line).Str("command", cmd).Err(err).Msg("submission failed")
				return fmt.Errorf("line %d: %w", line, err)
			}

			submitted.Add(1)
			logger.L().Info().
				Int("line", line).
				Str("symbol", res.Order.Symbol).
				Str("side", string(res.Order.Side)).
				Msg("command submitted")
			return nil
		})
	}

	err = g.Wait()

	result := &Result{
		Total:     len(commands),
		Submitted: int(submitted.Load()),
		Rejected:  int(rejected.Load()),
	}

	logger.L().Info().
		Int("total", result.Total).
		Int("submitted", result.Submitted).
		Int("rejected", result.Rejected).
		Msg("batch done")

	return result, err
}

// readCommands loads the non-empty, non-comment lines of the file.
func readCommands(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var commands []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return commands, nil
}
