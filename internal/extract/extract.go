package extract

import (
	"fmt"
	"sort"

	"github.com/longsoft/pfsx/internal/logger"
	"github.com/longsoft/pfsx/pkg/pfs"
)

// DefaultMaxDepth bounds container nesting. Real firmware images nest two
// or three levels; anything deeper is treated as malformed input.
const DefaultMaxDepth = 16

type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Extractor walks a PFS container tree and hands every artifact to a Sink.
// Nested containers are processed from an explicit work stack rather than
// by recursing, so nesting depth is enforced instead of consuming call
// stack on adversarial input.
type Extractor struct {
	sink      Sink
	log       logger.Logger
	maxDepth  int
	artifacts int
}

// job is one buffer awaiting a full decode/resolve/extract pass. Buffers at
// depth > 0 are freshly owned (decompressed) and never alias the original
// input.
type job struct {
	data   []byte
	prefix string
	depth  int
}

func New(sink Sink, log logger.Logger, opts Options) *Extractor {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Extractor{sink: sink, log: log, maxDepth: maxDepth}
}

// Artifacts returns the number of artifacts handed to the sink so far.
func (e *Extractor) Artifacts() int {
	return e.artifacts
}

// Run decodes data as a PFS container and extracts every artifact,
// descending into nested containers. A decode failure of the root buffer
// aborts the run; failures in nested buffers are logged and skipped. Sink
// failures are always fatal.
func (e *Extractor) Run(data []byte) error {
	stack := []job{{data: data}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := e.extract(j, func(child job) { stack = append(stack, child) }); err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) extract(j job, push func(job)) error {
	f, rest, err := pfs.DecodeFile(j.data)
	if err != nil {
		if j.depth == 0 {
			return fmt.Errorf("container decode: %w", err)
		}
		e.log.Error("nested container does not decode", "prefix", j.prefix, "error", err)
		return nil
	}
	if len(rest) > 0 {
		e.log.Warn("trailing bytes after footer", "prefix", j.prefix, "bytes", len(rest))
	}

	names := pfs.ResolveNames(f)
	if names.Failed {
		e.log.Warn("information section decode failed, falling back to generic names")
	} else if names.Trailing > 0 {
		e.log.Warn("trailing bytes in information section", "bytes", names.Trailing)
	}

	for i := range f.Sections {
		if err := e.section(j, i+1, &f.Sections[i], names.Name(i), push); err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) section(j job, index int, s *pfs.Section, name string, push func(job)) error {
	version := s.VersionString()
	log := e.log.With("section", index, "guid", s.Guid.String())
	log.Debug("section decoded",
		"name", name, "version", version,
		"data_size", s.DataSize, "data_sig_size", s.DataSigSize,
		"meta_size", s.MetaSize, "meta_sig_size", s.MetaSigSize)

	if s.DataSize == 0 {
		return nil
	}

	base := j.prefix + sectionStem(index, name) + "_" + version

	// Raw blobs are always persisted, before any classification attempt.
	if err := e.emit(base+"data", s.Data); err != nil {
		return err
	}
	if s.DataSigSize > 0 {
		if err := e.emit(base+"data.sig", s.DataSig); err != nil {
			return err
		}
	}
	if s.MetaSize > 0 {
		if err := e.emit(base+"meta", s.Meta); err != nil {
			return err
		}
	}
	if s.MetaSigSize > 0 {
		if err := e.emit(base+"meta.sig", s.MetaSig); err != nil {
			return err
		}
	}

	// Classification cascade, first match wins. A failed attempt has no
	// side effects and falls through to the next one; raw-leaf needs no
	// further work since the data blob is already persisted.
	if cs, rest, err := pfs.DecodeCompressedSection(s.Data); err == nil {
		return e.compressed(j, base, cs, len(rest), log, push)
	}
	if payload, ok := e.reassemble(s.Data, log); ok {
		log.Info("section type: subsection", "payload_size", len(payload))
		return e.emit(base+"data.payload", payload)
	}
	return nil
}

func (e *Extractor) compressed(j job, base string, cs pfs.CompressedSection, trailing int, log logger.Logger, push func(job)) error {
	if trailing > 0 {
		log.Warn("trailing bytes after compressed section", "bytes", trailing)
	}

	inflated, err := cs.Inflate()
	if err != nil {
		// Keep the section as a raw leaf; its data blob is already out.
		log.Warn("decompression failed, keeping raw payload", "error", err)
		return nil
	}
	log.Info("section type: zlib-compressed", "compressed_size", cs.Size, "size", len(inflated))

	if err := e.emit(base+"decompressed", inflated); err != nil {
		return err
	}
	if j.depth+1 >= e.maxDepth {
		log.Error("max nesting depth reached, not descending", "depth", j.depth+1)
		return nil
	}
	push(job{data: inflated, prefix: base + "_", depth: j.depth + 1})
	return nil
}

// reassemble attempts the subsection classification: the payload must
// decode as a container and every one of its sections' data must decode as
// a chunk record. All-or-nothing; a single bad chunk discards the set.
func (e *Extractor) reassemble(data []byte, log logger.Logger) ([]byte, bool) {
	sub, rest, err := pfs.DecodeFile(data)
	if err != nil {
		return nil, false
	}
	if len(rest) > 0 {
		log.Warn("trailing bytes after subsection", "bytes", len(rest))
	}

	chunks := make([]pfs.Chunk, 0, len(sub.Sections))
	for i := range sub.Sections {
		if sub.Sections[i].Data == nil {
			return nil, false
		}
		ch, err := pfs.DecodeChunk(sub.Sections[i].Data)
		if err != nil {
			return nil, false
		}
		chunks = append(chunks, ch)
	}
	if len(chunks) == 0 {
		return nil, false
	}

	sort.SliceStable(chunks, func(a, b int) bool { return chunks[a].Order < chunks[b].Order })

	var total int
	for _, ch := range chunks {
		total += len(ch.Data)
	}
	payload := make([]byte, 0, total)
	for _, ch := range chunks {
		payload = append(payload, ch.Data...)
	}
	return payload, true
}

func (e *Extractor) emit(name string, data []byte) error {
	if err := e.sink.Create(name, data); err != nil {
		return err
	}
	e.artifacts++
	return nil
}
