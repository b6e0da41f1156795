package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/domain"
	"github.com/vipcxj/intervals/internal/interval"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// splitKind separates an optional "kind:" prefix from arg.
func (o *options) splitKind(arg string) (domain.Kind, string, error) {
	name, rest, ok := strings.Cut(arg, ":")
	if !ok {
		name, rest = o.kind, arg
	}
	k, err := kindOf(strings.TrimSpace(name))
	if err != nil {
		return 0, "", err
	}
	return k, strings.TrimSpace(rest), nil
}

func (o *options) span(arg string) (interval.Span, error) {
	k, notation, err := o.splitKind(arg)
	if err != nil {
		return nil, err
	}
	s, err := interval.ParseOf(k, notation, false)
	if err != nil {
		return nil, fmt.Errorf("interval %q: %w", arg, err)
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{
			"arg":  arg,
			"kind": s.Kind(),
			"id":   s.UniqueIdentifier(),
		}).Debug("parsed interval")
	}
	return s, nil
}

func (o *options) spans(args []string) ([]interval.Span, error) {
	out := make([]interval.Span, 0, len(args))
	for _, arg := range args {
		s, err := o.span(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (o *options) point(arg string) (domain.Value, error) {
	k, lit, err := o.splitKind(arg)
	if err != nil {
		return domain.Value{}, err
	}
	v, err := domain.Parse(k, lit)
	if err != nil {
		return domain.Value{}, fmt.Errorf("point %q: %w", arg, err)
	}
	return v, nil
}

// print writes text in text mode and v as a JSON line in json mode.
func (o *options) print(cmd *cobra.Command, text string, v any) error {
	if o.format == formatJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
