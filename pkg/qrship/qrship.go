package qrship

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/qrship/internal/adapters/qrcode"
	"github.com/bft-labs/qrship/pkg/chunk"
	"github.com/bft-labs/qrship/pkg/frame"
	"github.com/bft-labs/qrship/pkg/hexcodec"
	"github.com/bft-labs/qrship/pkg/log"
	"github.com/bft-labs/qrship/pkg/matrix"
)

// Encoder turns payloads into sequences of QR symbols.
// An Encoder is safe for concurrent use.
type Encoder struct {
	cfg    Config
	gen    *matrix.Generator
	logger log.Logger
}

// Batch is the outcome of one encode call.
type Batch struct {
	// ID identifies the call in logs and manifests.
	ID string

	// PayloadLen is the payload size in bytes.
	PayloadLen int

	// Symbols holds one entry per part, ordered by part number.
	Symbols []*Symbol

	// Duration is the wall time spent encoding.
	Duration time.Duration
}

// New creates an Encoder. Zero fields of cfg take their defaults.
// Returns an error wrapping ErrInvalidConfig if cfg is invalid.
func New(cfg Config, opts ...Option) (*Encoder, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}
	if o.encoder == nil {
		o.encoder = qrcode.NewEncoder()
	}

	return &Encoder{
		cfg:    cfg,
		gen:    matrix.NewGenerator(o.encoder, o.logger),
		logger: o.logger,
	}, nil
}

// Config returns the effective configuration.
func (e *Encoder) Config() Config {
	return e.cfg
}

// Encode splits data into symbols numbered 1..N.
//
// An empty or oversized payload yields no symbols and an error wrapping
// ErrNotEncodable. A chunk the QR encoder rejects becomes a sentinel symbol
// at its position; if every symbol is a sentinel the symbols are returned
// together with ErrNoScannableSymbols.
func (e *Encoder) Encode(data []byte) ([]*Symbol, error) {
	b, err := e.EncodeBatch(data)
	if b == nil {
		return nil, err
	}
	return b.Symbols, err
}

// EncodeHex decodes a hex transaction string (optional 0x prefix) and
// encodes the bytes. Malformed hex fails with ErrOddLength or ErrInvalidHex.
func (e *Encoder) EncodeHex(s string) ([]*Symbol, error) {
	data, err := hexcodec.Decode(s)
	if err != nil {
		return nil, err
	}
	return e.Encode(data)
}

// EncodeString encodes the bytes of s as the payload.
func (e *Encoder) EncodeString(s string) ([]*Symbol, error) {
	return e.Encode([]byte(s))
}

// EncodeBatch is Encode with the batch metadata. The Batch is nil when the
// payload is not encodable, and non-nil alongside ErrNoScannableSymbols.
func (e *Encoder) EncodeBatch(data []byte) (*Batch, error) {
	start := time.Now()
	id := uuid.NewString()
	logger := e.logger.With(log.String("batch", id))

	logger.Debug("encoding payload",
		log.Int("bytes", len(data)),
		log.Any("ecc", e.cfg.ECC),
		log.Any("framing", e.cfg.Framing),
	)

	chunks, err := chunk.Plan(data, e.cfg.limits())
	if err != nil {
		logger.Warn("payload not encodable", log.Int("bytes", len(data)), log.Err(err))
		return nil, err
	}
	logger.Debug("planned parts",
		log.Int("parts", len(chunks)),
		log.Int("chunk_len", e.cfg.limits().EffectiveChunkLen()),
	)

	symbols, err := e.encodeChunks(chunks)
	if err != nil {
		return nil, err
	}

	b := &Batch{
		ID:         id,
		PayloadLen: len(data),
		Symbols:    symbols,
		Duration:   time.Since(start),
	}
	failed := Failed(symbols)
	logger.Info("payload encoded",
		log.Int("symbols", len(symbols)),
		log.Int("failed", len(failed)),
		log.Duration("duration", b.Duration),
	)
	if len(failed) == len(symbols) {
		return b, ErrNoScannableSymbols
	}
	return b, nil
}

// encodeChunks fills one slot per chunk so the output order never depends
// on worker scheduling.
func (e *Encoder) encodeChunks(chunks []chunk.Chunk) ([]*Symbol, error) {
	symbols := make([]*Symbol, len(chunks))
	errs := make([]error, len(chunks))

	workers := min(e.cfg.Concurrency, len(chunks))
	if workers <= 1 {
		for i, c := range chunks {
			symbols[i], errs[i] = e.encodeChunk(c)
		}
		return symbols, errors.Join(errs...)
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				symbols[i], errs[i] = e.encodeChunk(chunks[i])
			}
		}()
	}
	for i := range chunks {
		next <- i
	}
	close(next)
	wg.Wait()

	return symbols, errors.Join(errs...)
}

func (e *Encoder) encodeChunk(c chunk.Chunk) (*Symbol, error) {
	s, err := e.gen.Generate(frame.Encode(c, e.cfg.Framing), e.cfg.ECC, c.Part, c.Total)
	if err != nil {
		return nil, fmt.Errorf("encode part %d of %d: %w", c.Part, c.Total, err)
	}
	return s, nil
}
