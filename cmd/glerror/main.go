package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/seqsense/glerror"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "glerror",
		Short:         "Look up OpenGL/WebGL error codes and framebuffer status",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newDescribeCmd(), newFramebufferCmd(), newListCmd(), newCheckCmd())
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe CODE...",
		Short: "Describe GL error codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				v, err := parseCode(a)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "0x%04X %s\n", v, glerror.Describe(glerror.ErrorCode(v)))
			}
			return nil
		},
	}
}

func newFramebufferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "framebuffer STATUS...",
		Short: "Describe framebuffer completeness status",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				v, err := parseCode(a)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "0x%04X %s\n", v, glerror.DescribeFramebufferStatus(glerror.FramebufferStatus(v)))
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "errors:")
			for _, c := range glerror.ErrorCodes() {
				fmt.Fprintf(out, "  0x%04X %s\n", uint32(c), c)
			}
			fmt.Fprintln(out, "framebuffer status:")
			for _, s := range glerror.FramebufferStatuses() {
				fmt.Fprintf(out, "  0x%04X %s\n", uint32(s), s)
			}
		},
	}
}

func parseCode(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseCodes(ss []string) ([]uint32, error) {
	vs := make([]uint32, 0, len(ss))
	for _, s := range ss {
		v, err := parseCode(s)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

var _ pflag.Value = (*codeValue)(nil)

// codeValue accepts decimal or 0x prefixed hex code.
type codeValue uint32

func (v *codeValue) String() string { return fmt.Sprintf("0x%04X", uint32(*v)) }
func (v *codeValue) Type() string   { return "code" }

func (v *codeValue) Set(s string) error {
	c, err := parseCode(s)
	if err != nil {
		return err
	}
	*v = codeValue(c)
	return nil
}
