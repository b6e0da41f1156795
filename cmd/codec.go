package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/intervals/internal/interval"
)

const (
	codecCBOR = "cbor"
	codecJSON = "json"
)

func codecFlag(fs *pflag.FlagSet, codec *string) {
	fs.StringVarP(codec, "codec", "c", codecCBOR, "Codec: cbor or json")
}

func checkCodec(codec string) error {
	switch codec {
	case codecCBOR, codecJSON:
		return nil
	}
	return fmt.Errorf("unsupported codec %q, expected %s or %s", codec, codecCBOR, codecJSON)
}

func encodeCmd(opts *options) *cobra.Command {
	var codec string

	c := &cobra.Command{
		Use:   "encode A",
		Short: "Encode A as its persisted (kind, start, end, open start, open end) tuple",
		Long: `Encode A as its persisted (kind, start, end, open start, open end) tuple.
The cbor codec prints the encoding in hex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCodec(codec); err != nil {
				return err
			}
			s, err := opts.span(args[0])
			if err != nil {
				return err
			}
			var out string
			if codec == codecCBOR {
				b, err := cbor.Marshal(s)
				if err != nil {
					return err
				}
				out = hex.EncodeToString(b)
			} else {
				b, err := json.Marshal(s)
				if err != nil {
					return err
				}
				out = string(b)
			}
			return opts.print(cmd, out, map[string]any{
				"interval": s.String(),
				"codec":    codec,
				"data":     out,
			})
		},
	}

	codecFlag(c.Flags(), &codec)
	return c
}

func decodeCmd(opts *options) *cobra.Command {
	var codec string

	c := &cobra.Command{
		Use:   "decode DATA",
		Short: "Restore an interval from its persisted tuple and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCodec(codec); err != nil {
				return err
			}
			var (
				s   interval.Span
				err error
			)
			if codec == codecCBOR {
				b, herr := hex.DecodeString(args[0])
				if herr != nil {
					return fmt.Errorf("decode hex: %w", herr)
				}
				s, err = interval.DecodeCBOR(b)
			} else {
				s, err = interval.DecodeJSON([]byte(args[0]))
			}
			if err != nil {
				return err
			}
			return opts.print(cmd, s.Kind().String()+":"+s.String(), map[string]any{
				"interval":   s.String(),
				"kind":       s.Kind(),
				"normalized": s.UniqueIdentifier(),
			})
		},
	}

	codecFlag(c.Flags(), &codec)
	return c
}
