package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagecraft/styler"
	"github.com/pagecraft/styler/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a layer tree to static canvas HTML",
	Long: `Mount the canvas renderer on an in-process port, feed it a serialized
layer payload and write the resulting HTML, filtered to the requested
breakpoint and interaction state.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("layers", "", "Layer payload JSON file (required)")
	previewCmd.Flags().String("out", "", "Output HTML file (default stdout)")
	previewCmd.Flags().String("breakpoint", "desktop", "Breakpoint: desktop|tablet|mobile")
	previewCmd.Flags().String("state", "neutral", "UI state: neutral|hover|focus|active|disabled|current")
	_ = previewCmd.MarkFlagRequired("layers")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	layersPath := getStringWithFallback("layers", "preview.layers", "")
	raw, err := os.ReadFile(layersPath)
	if err != nil {
		return fmt.Errorf("reading layer payload: %w", err)
	}
	var payload preview.UpdateLayersPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("parsing layer payload %s: %w", layersPath, err)
	}

	hostEnd, rendererEnd := preview.Pipe()
	rec := preview.NewRecorder()
	hostEnd.OnMessage(func(m preview.Message) { _ = rec.Send(m) })

	r := preview.New(rendererEnd, preview.WithLogger(log))

	send := func(t preview.MessageType, p any) error {
		msg, err := preview.NewMessage(t, p)
		if err != nil {
			return err
		}
		return hostEnd.Send(msg)
	}

	if err := send(preview.MsgUpdateLayers, payload); err != nil {
		return err
	}

	bp := styler.Breakpoint(getStringWithFallback("breakpoint", "preview.breakpoint", "desktop"))
	if bp != styler.BreakpointDesktop {
		if err := send(preview.MsgUpdateBreakpoint, preview.UpdateBreakpointPayload{Breakpoint: bp}); err != nil {
			return err
		}
	}
	state := styler.UIState(getStringWithFallback("state", "preview.state", "neutral"))
	if state != styler.StateNeutral {
		if err := send(preview.MsgUpdateUIState, preview.UpdateUIStatePayload{UIState: state}); err != nil {
			return err
		}
	}
	r.Flush()

	out, err := r.HTML()
	if err != nil {
		return fmt.Errorf("serializing canvas: %w", err)
	}

	if outPath := getStringWithFallback("out", "preview.out", ""); outPath != "" {
		if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if last, ok := rec.Last(preview.MsgContentHeight); ok {
		var h preview.ContentHeightPayload
		if err := last.Decode(&h); err == nil {
			log.Debug("content height", zap.Int("height", h.Height))
		}
	}
	return nil
}
