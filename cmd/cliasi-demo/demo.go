// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dotandev/cliasi"
)

func newCli() *cliasi.Cliasi {
	opts := []cliasi.Option{cliasi.WithVerboseLevel(flagVerbose)}
	if flagOneLine {
		opts = append(opts, cliasi.WithOneLine())
	}
	if flagNoColor {
		opts = append(opts, cliasi.WithoutColors())
	}
	return cliasi.New("DEM", opts...)
}

func animOpts(extra ...cliasi.Option) []cliasi.Option {
	if flagUnicorn {
		extra = append(extra, cliasi.Unicorn())
	}
	return extra
}

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Print one line per message level",
	Run: func(cmd *cobra.Command, args []string) {
		cli := newCli()
		cli.Neutral("a neutral message")
		cli.Info("an informational message")
		cli.Log("a log message")
		cli.LogSmall("a compact log message")
		cli.List("a list item")
		cli.Warn("a warning")
		cli.Fail("a failure")
		cli.Success("a success")
		cli.Info("only shown with -v 2", cliasi.Verbosity(2))
	},
}

var spinnerCmd = &cobra.Command{
	Use:   "spinner",
	Short: "Run a blocking and a background spinner",
	Run: func(cmd *cobra.Command, args []string) {
		cli := newCli()
		cli.AnimateBlocking("warming up", 2*time.Second, animOpts()...)

		task := cli.Animate("crunching numbers", animOpts()...)
		time.Sleep(1500 * time.Millisecond)
		task.Update(cliasi.Message("almost there"))
		time.Sleep(time.Second)
		task.Stop()
		cli.Success("done crunching")
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Run an animated progress bar to completion",
	Run: func(cmd *cobra.Command, args []string) {
		cli := newCli()
		task := cli.AnimatedProgressbar("building", 0, animOpts(cliasi.ShowPercent())...)
		for p := 0; p <= 100; p += 5 {
			task.Update(cliasi.Progress(p))
			time.Sleep(150 * time.Millisecond)
		}
		task.Stop()
		cli.Success("build finished")
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Simulate a download with byte-count updates",
	Run: func(cmd *cobra.Command, args []string) {
		cli := newCli()
		const total = uint64(48 * 1024 * 1024)
		task := cli.AnimatedProgressbarDownload("connecting", 0, animOpts(cliasi.ShowPercent())...)
		var got uint64
		for got < total {
			got += 3 * 1024 * 1024
			if got > total {
				got = total
			}
			task.Update(
				cliasi.Message(humanize.Bytes(got)+" of "+humanize.Bytes(total)),
				cliasi.Progress(int(got*100/total)),
			)
			time.Sleep(200 * time.Millisecond)
		}
		task.Stop()
		cli.Success("downloaded " + humanize.Bytes(total))
	},
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Prompt for visible and hidden input",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := newCli()
		name, err := cli.Ask("what is your name?")
		if err != nil {
			return err
		}
		secret, err := cli.Ask("and your secret?", cliasi.HideInput())
		if err != nil {
			return err
		}
		cli.Success("hello " + name)
		cli.Info(humanize.Comma(int64(len(secret))) + " characters kept safe")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(messagesCmd, spinnerCmd, progressCmd, downloadCmd, askCmd)
}
