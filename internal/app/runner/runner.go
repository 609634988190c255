package runner

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/log_messages"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/logger"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/report"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/utils"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/adjustment"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/command"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/interfaces"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/subscriber"
)

// Runner drives one batch over the already opened session: parse each line,
// query the subscriber, let the engine decide, report. Lines are processed
// strictly one at a time; a failure on one line is logged and the batch
// continues with the next.
type Runner struct {
	querier interfaces.SubscriberQuerier
	engine  *adjustment.Engine
	writer  *report.Writer
	echo    func(string)
}

func New(querier interfaces.SubscriberQuerier, engine *adjustment.Engine, writer *report.Writer) *Runner {
	return &Runner{
		querier: querier,
		engine:  engine,
		writer:  writer,
		echo: func(line string) {
			fmt.Println(line)
		},
	}
}

// Run processes the positional argument: a path to a file of
// newline-delimited commands, or a single inline command.
func (r *Runner) Run(ctx context.Context, arg string) error {
	info, err := os.Stat(arg)
	if err == nil && !info.IsDir() {
		return r.runFile(ctx, arg)
	}
	r.ProcessLine(ctx, arg)
	return nil
}

func (r *Runner) runFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open command file %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.ProcessLine(ctx, line)
	}
	return scanner.Err()
}

// ProcessLine handles a single command end to end. Any failure terminates
// only this line's processing.
func (r *Runner) ProcessLine(ctx context.Context, raw string) {
	ctx = logger.WithTraceID(ctx, uuid.NewString())

	cmd, err := command.Parse(raw)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorParsingCommand, err)
		return
	}

	pairs, err := r.querier.RetrieveSubscriber(ctx, cmd.Msisdn)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorRetrievingSubscriberInfo, err)
		return
	}
	snap := subscriber.BuildSnapshot(cmd.Msisdn, pairs)

	line, ok, err := r.engine.Process(ctx, raw, cmd, snap)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorProcessingLine, utils.GetErrorCode(err), err)
		return
	}
	if !ok {
		return
	}

	if err := r.writer.Append(line); err != nil {
		logger.Error(ctx, log_messages.ErrorWritingReportLine, err)
	}
	r.echo(line)
}
