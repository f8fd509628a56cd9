// Package player feeds a decoded sample stream into an audio server sink
// by piping raw float32 frames through pacat.
package player

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/bpanahij/virtualmic/audio"
	"github.com/bpanahij/virtualmic/internal/logging"
	"github.com/bpanahij/virtualmic/utils"
)

// DefaultBufferSize is the number of samples moved per write.
// 4096 samples is ~85ms at 48 kHz, comfortably ahead of the server.
const DefaultBufferSize = 4096

// Options describe the playback process to spawn.
type Options struct {
	// Device is the sink the stream is written into.
	Device string
	// Rate and Channels describe the raw stream format.
	Rate     int
	Channels int
	// ClientName is how the stream shows up in the audio server.
	ClientName string
	// Command overrides the playback binary, for tests. Default "pacat".
	Command string
}

// Args builds the pacat argument vector for opts.
func Args(opts Options) []string {
	args := []string{
		"--playback",
		"--raw",
		"--format=float32le",
		fmt.Sprintf("--rate=%d", opts.Rate),
		fmt.Sprintf("--channels=%d", opts.Channels),
		"--device=" + opts.Device,
	}
	if opts.ClientName != "" {
		args = append(args, "--client-name="+opts.ClientName)
	}
	return args
}

// Player pipes a raw sample stream into the audio server through pacat,
// PulseAudio's playback client. pacat owns the server connection and the
// latency handling; the Player only feeds bytes.
type Player struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr strings.Builder
}

// New prepares a Player for opts without starting the process.
func New(opts Options) (*Player, error) {
	bin := opts.Command
	if bin == "" {
		bin = "pacat"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: install pulseaudio-utils or pipewire-pulse", ErrPacatNotFound)
	}

	p := &Player{cmd: exec.Command(path, Args(opts)...)}
	p.cmd.Stderr = &p.stderr
	return p, nil
}

// Start launches the playback process.
func (p *Player) Start() error {
	stdin, err := p.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	p.stdin = stdin

	logging.Debugf("starting %s", strings.Join(p.cmd.Args, " "))
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", p.cmd.Args[0], err)
	}
	return nil
}

// Stream copies src into the playback process until the source is
// exhausted or ctx is canceled. Cancellation is a normal stop, not an
// error; the caller decides what it means.
func (p *Player) Stream(ctx context.Context, src audio.Source) error {
	return StreamTo(ctx, p.stdin, src, DefaultBufferSize)
}

// Close shuts the stream down and reaps the process. Closing stdin lets
// pacat drain what it already buffered before exiting.
func (p *Player) Close() error {
	if p.stdin != nil {
		p.stdin.Close()
	}
	if err := p.cmd.Wait(); err != nil {
		msg := strings.TrimSpace(p.stderr.String())
		if msg != "" {
			return fmt.Errorf("pacat: %w: %s", err, msg)
		}
		return fmt.Errorf("pacat: %w", err)
	}
	return nil
}

// Kill terminates the playback process immediately.
func (p *Player) Kill() error {
	if p.cmd.Process != nil {
		return p.cmd.Process.Kill()
	}
	return nil
}

// StreamTo reads samples from src and writes them to w as little-endian
// float32 until EOF or context cancellation.
func StreamTo(ctx context.Context, w io.Writer, src audio.Source, bufferSize int) error {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	buf := make([]float32, bufferSize)
	raw := make([]byte, bufferSize*4)

	for {
		if err := ctx.Err(); err != nil {
			logging.Debugf("stream stopped: %v", err)
			return nil
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			written := utils.Float32ToBytes(raw, buf[:n])
			if _, werr := w.Write(raw[:written]); werr != nil {
				return fmt.Errorf("write samples: %w", werr)
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read samples: %w", err)
		}
	}
}
