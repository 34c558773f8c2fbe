package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"yellowball/internal/config"
	"yellowball/internal/models"
	"yellowball/internal/services"
	"yellowball/pkg/mailgateway"
	"yellowball/pkg/nylottery"
)

const (
	appName = "yellowball"
	appVers = "1.0.0"
)

const usageText = `usage: yellowball [-f filename] [-c] [-l] [-w] [-m]
                  [--to address[,address...]] [--from address]
                  [--server IP or host] [-q] [-n num,num,...]
                  [-p number] [-x] [-d number] [-t YYYY-MM-DD]
                  [-v]

optional arguments:
  -f, --file filename      ticket file name
  -c, --no-color           disable color output
  -l, --last-only          last draw only
  -w, --winners-only       show winners only
  -m, --send-mail          send results via email
  --to address[,...]       mail recipient address(es)
  --from address           mail sender address
  --server IP or host      mail server
  -q, --quick-pick         generate quick pick
  -n, --numbers num,...    white ball numbers (5)
  -p, --megaball number    mega ball
  -x, --megaplier          megaplier option
  -d, --draws number       number of draws
  -t, --purchased date     ticket purchase date (YYYY-MM-DD)
  -v, --version            show version info
`

type options struct {
	ticketFile  string
	noColor     bool
	lastOnly    bool
	winnersOnly bool
	sendMail    bool
	mailTo      string
	mailFrom    string
	mailServer  string
	quickPick   bool
	numbers     string
	megaball    string
	megaplier   bool
	draws       string
	purchased   string
	version     bool
}

func parseFlags() *options {
	opts := &options{}

	flag.StringVar(&opts.ticketFile, "f", "", "ticket file name")
	flag.StringVar(&opts.ticketFile, "file", "", "ticket file name")
	flag.BoolVar(&opts.noColor, "c", false, "disable color output")
	flag.BoolVar(&opts.noColor, "no-color", false, "disable color output")
	flag.BoolVar(&opts.lastOnly, "l", false, "last draw only")
	flag.BoolVar(&opts.lastOnly, "last-only", false, "last draw only")
	flag.BoolVar(&opts.winnersOnly, "w", false, "show winners only")
	flag.BoolVar(&opts.winnersOnly, "winners-only", false, "show winners only")
	flag.BoolVar(&opts.sendMail, "m", false, "send results via email")
	flag.BoolVar(&opts.sendMail, "send-mail", false, "send results via email")
	flag.StringVar(&opts.mailTo, "to", "", "mail recipient address(es)")
	flag.StringVar(&opts.mailFrom, "from", "", "mail sender address")
	flag.StringVar(&opts.mailServer, "server", "", "mail server")
	flag.BoolVar(&opts.quickPick, "q", false, "generate quick pick")
	flag.BoolVar(&opts.quickPick, "quick-pick", false, "generate quick pick")
	flag.StringVar(&opts.numbers, "n", "", "white ball numbers (5)")
	flag.StringVar(&opts.numbers, "numbers", "", "white ball numbers (5)")
	flag.StringVar(&opts.megaball, "p", "", "mega ball")
	flag.StringVar(&opts.megaball, "megaball", "", "mega ball")
	flag.BoolVar(&opts.megaplier, "x", false, "megaplier option")
	flag.BoolVar(&opts.megaplier, "megaplier", false, "megaplier option")
	flag.StringVar(&opts.draws, "d", "", "number of draws")
	flag.StringVar(&opts.draws, "draws", "", "number of draws")
	flag.StringVar(&opts.purchased, "t", "", "ticket purchase date")
	flag.StringVar(&opts.purchased, "purchased", "", "ticket purchase date")
	flag.BoolVar(&opts.version, "v", false, "show version info")
	flag.BoolVar(&opts.version, "version", false, "show version info")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}
	flag.Parse()

	return opts
}

func main() {
	opts := parseFlags()

	if opts.version {
		fmt.Printf("%s %s\n", appName, appVers)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	os.Exit(run(opts, cfg, os.Stdout))
}

// mailSettings holds the resolved mail delivery parameters
type mailSettings struct {
	from   string
	to     []string
	server string
}

var errMailAddresses = errors.New("sending mail requires sender and recipient addresses (--to and --from)")

// resolveMailOptions merges the mail flags with the configured defaults. When
// mail delivery is requested, missing addresses are an error and color output
// is forced off. This runs before any ticket handling.
func resolveMailOptions(opts *options, cfg *config.Config) (mailSettings, error) {
	settings := mailSettings{
		from:   opts.mailFrom,
		to:     cfg.Mail.To,
		server: opts.mailServer,
	}
	if settings.from == "" {
		settings.from = cfg.Mail.From
	}
	if opts.mailTo != "" {
		settings.to = strings.Split(opts.mailTo, ",")
	}
	if settings.server == "" {
		settings.server = cfg.Mail.Server
	}

	if opts.sendMail {
		if settings.from == "" || len(settings.to) == 0 {
			return mailSettings{}, errMailAddresses
		}
		opts.noColor = true
	}

	return settings, nil
}

// run executes the checker with the parsed options and returns the process
// exit code
func run(opts *options, cfg *config.Config, out io.Writer) int {
	mail, err := resolveMailOptions(opts, cfg)
	if err != nil {
		fmt.Fprintf(out, "ERROR: %v.\n", err)
		return 1
	}

	ticketService := services.NewTicketService()

	if opts.quickPick {
		fmt.Fprint(out, services.RenderQuickPick(ticketService.QuickPick()))
		return 0
	}

	ticket, ok := loadTicket(opts, ticketService, out)
	if !ok {
		return 1
	}

	resultsClient := nylottery.NewClient(cfg.Results.BaseURL, cfg.Results.Mock)
	checker := services.NewCheckerService(services.NewResultsService(resultsClient), opts.lastOnly)
	report, err := checker.Check(context.Background(), ticket)
	if err != nil {
		fmt.Fprintln(out, "Error: could not retrieve results! Check network connection.")
		return 1
	}

	reporter := services.NewReportService(services.NewStyle(opts.noColor), opts.winnersOnly)
	output := reporter.Render(report)

	if opts.sendMail {
		gateway := mailgateway.NewSMTPGateway(mail.server, cfg.Mail.Port)
		if err := gateway.Send(mail.from, mail.to, services.MailSubject, output); err != nil {
			fmt.Fprintf(out, "ERROR: failed to send results: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprint(out, output)
	return 0
}

// loadTicket produces the canonical ticket from the ticket file or from the
// direct-entry flags. Every failure path prints a message and reports failure.
func loadTicket(opts *options, ticketService *services.TicketService, out io.Writer) (*models.Ticket, bool) {
	if opts.ticketFile != "" {
		fields, err := config.LoadTicketFile(opts.ticketFile)
		if err != nil {
			if err == config.ErrTicketFileNotFound {
				fmt.Fprintln(out, "ERROR: ticket file not found.")
			} else {
				fmt.Fprintln(out, "ERROR: invalid ticket file.")
			}
			return nil, false
		}
		ticket, err := ticketService.Validate(fields.Numbers, fields.Megaball, fields.Draws, fields.Purchased, fields.Megaplier)
		if err != nil {
			fmt.Fprintln(out, "ERROR: invalid ticket file.")
			return nil, false
		}
		return ticket, true
	}

	if opts.numbers != "" && opts.megaball != "" && opts.purchased != "" {
		ticket, err := ticketService.Validate(opts.numbers, opts.megaball, opts.draws, opts.purchased, opts.megaplier)
		if err != nil {
			fmt.Fprintln(out, "ERROR: invalid ticket.")
			fmt.Fprint(out, usageText)
			return nil, false
		}
		return ticket, true
	}

	fmt.Fprint(out, usageText)
	return nil, false
}
