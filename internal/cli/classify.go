package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// maxLineBytes bounds a single stdin line; real user agents are far shorter.
const maxLineBytes = 64 * 1024

func newClassifyCmd() *cobra.Command {
	var (
		format string
		field  string
	)

	cmd := &cobra.Command{
		Use:   "classify [user-agent ...]",
		Short: "Classify user agents given as arguments or one per stdin line",
		Example: `  uaclass classify "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_6) Chrome/55.0 Safari/537.36"
  uaclass classify --format json < access-agents.txt
  uaclass classify --field platform "Opera/9.80 (iPhone; Opera Mini/8.0.0)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if field != "" {
				if _, err := (useragent.UserAgent{}).Attr(field); err != nil {
					return err
				}
			}
			switch format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unsupported format %q: must be %s, %s or %s", format, formatText, formatJSON, formatYAML)
			}

			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				inputs = lines
			}

			results := make([]useragent.UserAgent, 0, len(inputs))
			for _, s := range inputs {
				results = append(results, useragent.New(s))
			}

			out := cmd.OutOrStdout()
			if field != "" {
				return writeField(out, results, field)
			}
			switch format {
			case formatJSON:
				return writeJSON(out, results)
			case formatYAML:
				return writeYAML(out, results)
			default:
				return writeText(out, results)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().StringVar(&field, "field", "", "print a single attribute: user_agent, platform, browser, mobile or desktop")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read user agents: %w", err)
	}
	return lines, nil
}

func writeField(w io.Writer, results []useragent.UserAgent, field string) error {
	for _, ua := range results {
		v, err := ua.Attr(field)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes one object per line.
func writeJSON(w io.Writer, results []useragent.UserAgent) error {
	enc := json.NewEncoder(w)
	for _, ua := range results {
		if err := enc.Encode(ua); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, results []useragent.UserAgent) error {
	fields := make([]useragent.Fields, 0, len(results))
	for _, ua := range results {
		fields = append(fields, ua.Fields())
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fields); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, results []useragent.UserAgent) error {
	for _, ua := range results {
		formFactor := "desktop"
		if ua.IsMobile() {
			formFactor = "mobile"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ua.Platform(), ua.Browser(), formFactor, ua.UserAgent()); err != nil {
			return err
		}
	}
	return nil
}
