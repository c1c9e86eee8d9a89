package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/merchant-cli/internal/adapters/render/spinner"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// requestFlags are shared by every command that reaches the backend.
type requestFlags struct {
	userID  string
	headers []string
	asJSON  bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.userID, "user-id", "", "Merchant user id")
	cmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, "Extra request header, 'Key: Value' (repeatable)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Output JSON")
	_ = cmd.MarkFlagRequired("user-id")
}

// parseHeaders accepts "Key: Value" and "Key=Value". Repeated keys add values.
func parseHeaders(raw []string) (http.Header, error) {
	headers := http.Header{}
	for _, entry := range raw {
		key, value, ok := strings.Cut(entry, ":")
		if !ok {
			key, value, ok = strings.Cut(entry, "=")
		}
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q (want 'Key: Value')", entry)
		}
		headers.Add(key, strings.TrimSpace(value))
	}
	return headers, nil
}

func runRequest(cmd *cobra.Command, asJSON bool, label string, work func(context.Context) error) error {
	if asJSON {
		return work(cmd.Context())
	}
	return spinner.Run(cmd.Context(), cmd.ErrOrStderr(), spinner.Props{Label: label, ClassName: "text-69"}, work)
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
