package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"horatime-api/internal/client"
	"horatime-api/internal/timezone"

	"github.com/urfave/cli/v2"
)

var (
	errUnhealthy = errors.New("api is not healthy")
	errLookup    = errors.New("lookup failed")
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "horatime",
		Usage:     "Look up the current time of a city or country",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "HoraTime API base URL",
				Value:   client.DefaultBaseURL,
				EnvVars: []string{"HORATIME_API_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP request timeout",
				Value: client.DefaultTimeout,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "time",
				Usage:     "Show the current time for a location",
				ArgsUsage: "<location>",
				Action:    timeAction,
			},
			{
				Name:  "health",
				Usage: "Check that the API is up",
				Action: func(c *cli.Context) error {
					if !apiClient(c).Healthy(c.Context) {
						return errUnhealthy
					}
					fmt.Fprintln(c.App.Writer, "ok")
					return nil
				},
			},
			{
				Name:  "info",
				Usage: "Show the API name and version",
				Action: func(c *cli.Context) error {
					info, err := apiClient(c).Info(c.Context)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, info)
					return nil
				},
			},
		},
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("api-url"), c.Duration("timeout"))
}

func timeAction(c *cli.Context) error {
	location := strings.Join(c.Args().Slice(), " ")
	resp, err := apiClient(c).Timezone(c.Context, location)
	if err != nil {
		return err
	}
	if !resp.Success() {
		return fmt.Errorf("%w: %s: %s", errLookup, resp.Status, resp.Message)
	}
	printResponse(c.App.Writer, resp)
	return nil
}

func printResponse(w io.Writer, resp timezone.Response) {
	fmt.Fprintf(w, "Location:  %s\n", deref(resp.Location))
	fmt.Fprintf(w, "Timezone:  %s\n", deref(resp.Timezone))
	if resp.CurrentTime != nil {
		fmt.Fprintf(w, "Time:      %s\n", resp.CurrentTime)
	}
	fmt.Fprintf(w, "UTC:       %s\n", deref(resp.UTCOffset))
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
