package codec

import (
	"cmp"
	"customer-catalog/internal/pkg/apperrors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/munnerz/goautoneg"
)

// Registry selects a Codec for a request.
type Registry struct {
	byFormat    map[Format]Codec
	byMediaType map[string]Codec
	mediaTypes  []string
	fallback    Codec
}

// NewRegistry returns a registry holding the JSON and protobuf codecs. JSON
// is served when the client states no preference.
func NewRegistry() (*Registry, error) {
	jsonCodec, err := JSON()
	if err != nil {
		return nil, err
	}
	protoCodec, err := Protobuf()
	if err != nil {
		return nil, err
	}

	r := &Registry{
		byFormat:    make(map[Format]Codec),
		byMediaType: make(map[string]Codec),
		fallback:    jsonCodec,
	}
	r.register(jsonCodec, MediaTypeJSON)
	r.register(protoCodec, MediaTypeProtobuf, MediaTypeProtobufAlias)
	return r, nil
}

func (r *Registry) register(c Codec, mediaTypes ...string) {
	r.byFormat[c.Format()] = c
	for _, mt := range mediaTypes {
		r.byMediaType[mt] = c
		r.mediaTypes = append(r.mediaTypes, mt)
	}
}

func (r *Registry) ByFormat(f Format) (Codec, bool) {
	c, ok := r.byFormat[f]
	return c, ok
}

// MediaTypes lists the negotiable media types in preference order.
func (r *Registry) MediaTypes() []string {
	return append([]string(nil), r.mediaTypes...)
}

// Negotiate picks a codec from the format query parameter, falling back to
// the Accept header. A request with neither gets JSON.
func (r *Registry) Negotiate(req *http.Request) (Codec, error) {
	if wanted := strings.ToLower(strings.TrimSpace(req.URL.Query().Get("format"))); wanted != "" {
		if c, ok := r.byFormat[Format(wanted)]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("%w: unsupported format %q", apperrors.ErrNotAcceptable, wanted)
	}

	accept := strings.TrimSpace(req.Header.Get("Accept"))
	if accept == "" {
		return r.fallback, nil
	}
	c := r.match(goautoneg.ParseAccept(accept))
	if c == nil {
		return nil, fmt.Errorf("%w: Accept %q, supported %s", apperrors.ErrNotAcceptable, accept, strings.Join(r.mediaTypes, ", "))
	}
	return c, nil
}

// match walks the clauses by descending quality. A codec named by a q=0 clause
// is refused under all of its media types, even when a wildcard would match.
func (r *Registry) match(clauses []goautoneg.Accept) Codec {
	slices.SortStableFunc(clauses, func(a, b goautoneg.Accept) int {
		return cmp.Compare(b.Q, a.Q)
	})

	refused := make(map[Codec]bool)
	for _, clause := range clauses {
		if clause.Q > 0 || clause.Type == "*" || clause.SubType == "*" {
			continue
		}
		if c, ok := r.byMediaType[strings.ToLower(clause.Type+"/"+clause.SubType)]; ok {
			refused[c] = true
		}
	}

	for _, clause := range clauses {
		if clause.Q <= 0 {
			continue
		}
		for _, mt := range r.mediaTypes {
			c := r.byMediaType[mt]
			if refused[c] {
				continue
			}
			typ, subType, _ := strings.Cut(mt, "/")
			if (clause.Type == "*" || strings.EqualFold(clause.Type, typ)) &&
				(clause.SubType == "*" || strings.EqualFold(clause.SubType, subType)) {
				return c
			}
		}
	}
	return nil
}
