package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"eru-extint-go/services/extint"
	"eru-extint-go/services/extint/internal/edgefeed"
	"eru-extint-go/services/extint/internal/platform"
	"eru-extint-go/x/logx"
)

var runOpts = struct {
	pulses int
	feed   string
	serial string
	baud   int
	quiet  bool
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive edges into the simulated input pin and report serviced interrupts",
	Long: "Set the line up on the simulated board, then apply edges from --pulses, " +
		"a --feed file (\"-\" for stdin) or a bench generator on --serial.",
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	f := runCmd.Flags()
	f.IntVarP(&runOpts.pulses, "pulses", "n", 1, "falling/rising pulses to apply when no feed is given")
	f.StringVarP(&runOpts.feed, "feed", "f", "", "edge feed file, - for stdin")
	f.StringVarP(&runOpts.serial, "serial", "s", "", "serial device of a bench edge generator")
	f.IntVar(&runOpts.baud, "baud", 115200, "serial baud rate")
	f.BoolVarP(&runOpts.quiet, "quiet", "q", false, "print only the summary")
}

func runSim(cmd *cobra.Command, args []string) error {
	p, err := platform.ByName(board)
	if err != nil {
		return err
	}
	logx.SetOutput(cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, err := openFeed(ctx, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer src.Close()

	hw := platform.NewSimHardware(p)
	monCtx, monStop := context.WithCancel(ctx)
	defer monStop()
	mon := extint.NewMonitor(64, 256)
	mon.Start(monCtx)

	line, err := extint.Setup(extint.Config{
		Profile: p,
		BringUp: hw.BringUp,
		ERU:     hw.ERU.Unit,
		NVIC:    hw.NVIC,
		LED:     hw.LED,
		Monitor: mon,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var printed atomic.Uint32
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		for {
			select {
			case <-monCtx.Done():
				return
			case ev := <-mon.Events():
				printed.Add(1)
				if !runOpts.quiet {
					fmt.Fprintf(w, "%s #%d led=%t\n", ev.TS.Format("15:04:05.000000"), ev.Seq, ev.Level)
				}
			}
		}
	}()

	st, ferr := edgefeed.Replay(ctx, src, hw.ERU, p.Trigger.Input.Pin)

	// Let the monitor catch up with what the handler already saw.
	want := hw.LED.Toggles() - mon.Drops()
	deadline := time.Now().Add(500 * time.Millisecond)
	for printed.Load() < want && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	monStop()
	<-printerDone

	fmt.Fprintf(w, "%s: falls=%d rises=%d serviced=%d toggles=%d led=%t drops=%d state=%s\n",
		p.Name, st.Falls, st.Rises, hw.NVIC.Serviced(line.Dispatch.IRQ()), hw.LED.Toggles(),
		hw.LED.Get(), mon.Drops(), line.Dispatch.State())

	if ferr != nil && ctx.Err() == nil {
		return ferr
	}
	return nil
}

// openFeed picks the edge source. A serial port is closed when ctx ends so
// a blocked read returns.
func openFeed(ctx context.Context, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case runOpts.serial != "":
		port, err := edgefeed.OpenSerial(edgefeed.SerialConfig{Device: runOpts.serial, Baud: runOpts.baud})
		if err != nil {
			return nil, err
		}
		go func() {
			<-ctx.Done()
			port.Close()
		}()
		return port, nil
	case runOpts.feed == "-":
		return io.NopCloser(stdin), nil
	case runOpts.feed != "":
		return os.Open(runOpts.feed)
	}
	return io.NopCloser(strings.NewReader("P " + strconv.Itoa(runOpts.pulses) + "\n")), nil
}
