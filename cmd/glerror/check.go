package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqsense/glerror"
)

var errCheckFailed = errors.New("check failed")

type checkFlags struct {
	config      string
	errors      []string
	framebuffer codeValue
	file        string
	line        int
}

func newCheckCmd() *cobra.Command {
	fl := &checkFlags{framebuffer: codeValue(glerror.FRAMEBUFFER_COMPLETE)}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report given error codes and framebuffer status as the reporter does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, fl)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fl.config, "config", "", "Reporter config file (YAML)")
	f.StringSliceVar(&fl.errors, "error", nil, "Pending error codes")
	f.Var(&fl.framebuffer, "framebuffer", "Framebuffer status")
	f.StringVar(&fl.file, "file", "main.go", "Reported file name")
	f.IntVar(&fl.line, "line", 0, "Reported line")
	return cmd
}

func loadConfig(path string) (glerror.Config, error) {
	if path == "" {
		return glerror.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return glerror.Config{}, err
	}
	defer f.Close()
	return glerror.LoadConfig(f)
}

func runCheck(cmd *cobra.Command, fl *checkFlags) error {
	codes, err := parseCodes(fl.errors)
	if err != nil {
		return err
	}
	c, err := loadConfig(fl.config)
	if err != nil {
		return err
	}
	ctx := glerror.NewReplayContext(glerror.FramebufferStatus(fl.framebuffer))
	for _, code := range codes {
		ctx.Errors = append(ctx.Errors, glerror.ErrorCode(code))
	}
	r, err := glerror.NewWithConfig(ctx, c)
	if err != nil {
		return err
	}
	if c.Output == glerror.OutputStderr {
		r.Logger.SetOutput(cmd.ErrOrStderr())
	}

	loc := glerror.Location{File: fl.file, Line: fl.line}
	ok := true
	for len(ctx.Errors) > 0 {
		if !r.CheckError(loc) {
			ok = false
		}
	}
	if !r.CheckFramebufferError(loc) {
		ok = false
	}
	if !ok {
		return errCheckFailed
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
