package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type App struct {
	cfg  *Config
	log  *zap.Logger
	calc *Calculator
	in   *bufio.Reader
	out  io.Writer
}

func NewApp(cfg *Config, log *zap.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:  cfg,
		log:  log,
		calc: NewCalculator(cfg.PayRates(), cfg.Rates.CutoffHour),
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// ReadHours asks for the three hours on the console. Lines that are not
// integers come back as nil fields.
func (a *App) ReadHours() RawInput {
	rules := a.cfg.Rules()

	return RawInput{
		Start: a.prompt(fmt.Sprintf("Please enter the military hour you started (%02d-%d): ", rules.Start.Min, rules.Start.Max)),
		Bed:   a.prompt(fmt.Sprintf("Please enter the military hour for bedtime (%02d-%d): ", rules.Bed.Min, rules.Bed.Max)),
		End:   a.prompt(fmt.Sprintf("Please enter the military hour you ended (%02d-%d): ", rules.End.Min, rules.End.Max)),
	}
}

func (a *App) prompt(msg string) *int {
	fmt.Fprint(a.out, msg)

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		a.log.Warn("failed to read hour", zap.Error(err))
		return nil
	}

	return ParseHour(strings.TrimSpace(line))
}

// Calculate validates the hours, moves them onto the babysitter clock and
// prices the night.
func (a *App) Calculate(raw RawInput) (*Report, error) {
	if err := ValidateHours(raw, a.cfg.Rules()); err != nil {
		var inputErr *InvalidInputError
		if errors.As(err, &inputErr) {
			a.log.Warn("hours rejected",
				zap.String("reason", inputErr.Reason),
				zap.String("start", formatRawHour(raw.Start)),
				zap.String("bed", formatRawHour(raw.Bed)),
				zap.String("end", formatRawHour(raw.End)),
			)
		}
		return nil, err
	}

	input := NightHours{Start: *raw.Start, Bed: *raw.Bed, End: *raw.End}
	workDay := Normalize(input.Start, input.Bed, input.End)
	a.log.Debug("work day normalized",
		zap.String("start", FormatClock(workDay.Start)),
		zap.String("bed", FormatClock(workDay.Bed)),
		zap.String("end", FormatClock(workDay.End)),
	)

	bands, err := a.calc.Bands(workDay)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate bands: %w", err)
	}

	total := bands.TotalPay()
	a.log.Debug("pay calculated", zap.String("total", FormatMoney(total)))

	return &Report{
		Input:   input,
		Offsets: workDay.Offsets(),
		WorkDay: [3]string{FormatClock(workDay.Start), FormatClock(workDay.Bed), FormatClock(workDay.End)},
		Bands:   bands.Lines(),
		Total:   total,
	}, nil
}

// Run calculates one night and writes the report. Invalid hours are
// returned as *InvalidInputError.
func (a *App) Run(raw RawInput, opts OutputOptions) error {
	if !opts.JSON {
		fmt.Fprintf(a.out, "start time hour: %s\n", formatRawHour(raw.Start))
		fmt.Fprintf(a.out, "bed time hour: %s\n", formatRawHour(raw.Bed))
		fmt.Fprintf(a.out, "end time hour: %s\n", formatRawHour(raw.End))
	}

	report, err := a.Calculate(raw)
	if err != nil {
		return err
	}

	if opts.JSON {
		return a.writeJSON(report)
	}

	a.printReport(report)
	if opts.Breakdown {
		fmt.Fprintln(a.out)
		a.printBreakdown(report)
	}

	return nil
}

func (a *App) printReport(r *Report) {
	fmt.Fprintf(a.out, "Converted start hour: %d\n", r.Offsets.Start)
	fmt.Fprintf(a.out, "Converted bed hour: %d\n", r.Offsets.Bed)
	fmt.Fprintf(a.out, "Converted end hour: %d\n", r.Offsets.End)

	fmt.Fprintf(a.out, "Converted start time: %s\n", r.WorkDay[0])
	fmt.Fprintf(a.out, "Converted bed time: %s\n", r.WorkDay[1])
	fmt.Fprintf(a.out, "Converted end time: %s\n", r.WorkDay[2])

	fmt.Fprintln(a.out, FormatMoney(r.Total))
	fmt.Fprintf(a.out, "INCOME = %s \n", FormatMoney(r.Total))
}

func (a *App) printBreakdown(r *Report) {
	headers := []string{"From", "To", "Hours", "Rate", "Amount"}

	var rows [][]string
	for _, line := range r.Bands {
		rows = append(rows, []string{
			line.From,
			line.To,
			strconv.Itoa(line.Hours),
			FormatMoney(line.Rate),
			FormatMoney(line.Amount),
		})
	}

	footers := []string{"", "", "", "Total:", FormatMoney(r.Total)}
	PrintTable(a.out, headers, rows, footers)
}

func (a *App) writeJSON(r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// ShowRates prints the configured rate schedule.
func (a *App) ShowRates() {
	rates := a.cfg.PayRates()
	cutoff := FormatClock(HourOfDay(a.cfg.Rates.CutoffHour))

	headers := []string{"Band", "From", "To", "Rate"}
	rows := [][]string{
		{"before bed", "start", "bed", FormatMoney(rates.BeforeBed)},
		{"after bed", "bed", cutoff, FormatMoney(rates.AfterBed)},
		{"after cutoff", cutoff, "end", FormatMoney(rates.AfterCutoff)},
	}

	PrintTable(a.out, headers, rows, nil)
}

// HourCompletions lists the accepted hours for the argument at position pos.
func (a *App) HourCompletions(pos int) []string {
	rules := a.cfg.Rules()

	var r HourRange
	switch pos {
	case 0:
		r = rules.Start
	case 1:
		r = rules.Bed
	case 2:
		r = rules.End
	default:
		return nil
	}
	if r.Max < r.Min {
		return nil
	}

	hours := make([]string, 0, r.Max-r.Min+1)
	for h := r.Min; h <= r.Max; h++ {
		hours = append(hours, strconv.Itoa(h))
	}
	return hours
}
