package pulse

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bpanahij/virtualmic/internal/logging"
)

// runner executes pactl invocations; an interface so tests can script the
// control utility without an audio server.
type runner interface {
	run(args ...string) (stdout string, stderr string, err error)
}

type execRunner struct {
	bin string
}

func (e execRunner) run(args ...string) (string, string, error) {
	cmd := exec.Command(e.bin, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.String(), errOut.String(), err
}

// Client drives the audio server through the pactl control utility.
// It works against both PulseAudio and PipeWire's pipewire-pulse layer.
type Client struct {
	run runner
}

// NewClient returns a Client, verifying that pactl is installed.
func NewClient() (*Client, error) {
	path, err := exec.LookPath("pactl")
	if err != nil {
		return nil, fmt.Errorf("%w: install pulseaudio-utils or pipewire-pulse", ErrPactlNotFound)
	}
	return &Client{run: execRunner{bin: path}}, nil
}

// LoadModule loads an audio server module and returns its module id,
// parsed from pactl's stdout.
func (c *Client) LoadModule(module string, args ...string) (uint32, error) {
	cmdArgs := append([]string{"load-module", module}, args...)
	logging.Debugf("pactl %s", strings.Join(cmdArgs, " "))

	out, errOut, err := c.run.run(cmdArgs...)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w: %s", module, err, strings.TrimSpace(errOut))
	}

	id, err := strconv.ParseUint(strings.TrimSpace(out), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: load %s printed %q", ErrBadModuleID, module, strings.TrimSpace(out))
	}

	return uint32(id), nil
}

// UnloadModule removes a previously loaded module.
func (c *Client) UnloadModule(id uint32) error {
	logging.Debugf("pactl unload-module %d", id)

	_, errOut, err := c.run.run("unload-module", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return fmt.Errorf("unload module %d: %w: %s", id, err, strings.TrimSpace(errOut))
	}
	return nil
}

// MicConfig describes the virtual microphone to create.
type MicConfig struct {
	// Name is the source name applications see, e.g. "VirtualMic".
	Name string
	// Rate is the sample rate of the sink in Hz.
	Rate int
	// Channels is the channel count of the sink.
	Channels int
	// Monitor additionally loops the sink back to the default output so
	// the operator hears what the microphone carries.
	Monitor bool
	// LatencyMS is the loopback latency used in monitor mode.
	LatencyMS int
}

// VirtualMic is a created virtual microphone: a null-sink receiving the
// audio plus a remap-source exposing the sink monitor as an input device.
// Module ids are tracked so Teardown can remove everything again.
type VirtualMic struct {
	client *Client

	sinkModule     uint32
	remapModule    uint32
	loopbackModule uint32 // 0 when monitor mode is off or loopback failed

	// SinkName is the null-sink the decoded stream is written into.
	SinkName string
	// SourceName is the input device name applications select.
	SourceName string
}

// CreateVirtualMic creates the virtual microphone described by cfg.
// On a partial failure every module created so far is unloaded again.
func (c *Client) CreateVirtualMic(cfg MicConfig) (*VirtualMic, error) {
	sinkName := cfg.Name + "_sink"

	sinkID, err := c.LoadModule("module-null-sink",
		"sink_name="+sinkName,
		fmt.Sprintf("sink_properties=device.description=%q", cfg.Name+"_Output"),
		fmt.Sprintf("rate=%d", cfg.Rate),
		fmt.Sprintf("channels=%d", cfg.Channels),
	)
	if err != nil {
		return nil, fmt.Errorf("create null sink: %w", err)
	}
	logging.Debugf("created null sink %s (module %d)", sinkName, sinkID)

	monitorName := sinkName + ".monitor"
	remapID, err := c.LoadModule("module-remap-source",
		"source_name="+cfg.Name,
		"master="+monitorName,
		fmt.Sprintf("source_properties=device.description=%q", cfg.Name),
	)
	if err != nil {
		// The sink is useless without its source; remove it again.
		if uerr := c.UnloadModule(sinkID); uerr != nil {
			logging.Warnf("rollback of null sink failed: %v", uerr)
		}
		return nil, fmt.Errorf("create remap source: %w", err)
	}
	logging.Debugf("created remap source %s (module %d)", cfg.Name, remapID)

	mic := &VirtualMic{
		client:      c,
		sinkModule:  sinkID,
		remapModule: remapID,
		SinkName:    sinkName,
		SourceName:  cfg.Name,
	}

	if cfg.Monitor {
		latency := cfg.LatencyMS
		if latency <= 0 {
			latency = 1
		}
		loopbackID, err := c.LoadModule("module-loopback",
			"source="+monitorName,
			fmt.Sprintf("latency_msec=%d", latency),
		)
		if err != nil {
			// Monitoring is a convenience; the microphone still works.
			logging.Warnf("loopback failed, audio will not play through speakers: %v", err)
		} else {
			mic.loopbackModule = loopbackID
			logging.Debugf("created loopback (module %d)", loopbackID)
		}
	}

	return mic, nil
}

// Teardown unloads every module this microphone created, in reverse
// creation order. It keeps going past individual failures and reports
// them joined.
func (m *VirtualMic) Teardown() error {
	var errs []error

	if m.loopbackModule != 0 {
		logging.Debugf("removing loopback (module %d)", m.loopbackModule)
		if err := m.client.UnloadModule(m.loopbackModule); err != nil {
			errs = append(errs, err)
		}
		m.loopbackModule = 0
	}
	if m.remapModule != 0 {
		logging.Debugf("removing remap source (module %d)", m.remapModule)
		if err := m.client.UnloadModule(m.remapModule); err != nil {
			errs = append(errs, err)
		}
		m.remapModule = 0
	}
	if m.sinkModule != 0 {
		logging.Debugf("removing null sink (module %d)", m.sinkModule)
		if err := m.client.UnloadModule(m.sinkModule); err != nil {
			errs = append(errs, err)
		}
		m.sinkModule = 0
	}

	return errors.Join(errs...)
}
