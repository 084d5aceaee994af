package codec

import (
	"customer-catalog/internal/domain/customer"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatProtobuf Format = "protobuf"

	MediaTypeJSON          = "application/json"
	MediaTypeProtobuf      = "application/x-protobuf"
	MediaTypeProtobufAlias = "application/protobuf"
)

// Codec renders catalog envelopes in one wire format.
type Codec interface {
	Format() Format
	ContentType() string

	MarshalResult(r customer.Result) ([]byte, error)
	UnmarshalResult(data []byte) (customer.Result, error)

	MarshalList(l customer.List) ([]byte, error)
	UnmarshalList(data []byte) (customer.List, error)

	// ResultMessage and ListMessage name the schema messages the payloads
	// are encoded as.
	ResultMessage() string
	ListMessage() string
}

type messageCodec struct {
	schema      *schema
	format      Format
	contentType string
	marshal     func(proto.Message) ([]byte, error)
	unmarshal   func([]byte, proto.Message) error
}

var _ Codec = (*messageCodec)(nil)

// JSON returns the protobuf JSON mapping codec (camelCase names, defaults omitted).
func JSON() (Codec, error) {
	s, err := loadSchema()
	if err != nil {
		return nil, err
	}
	return &messageCodec{
		schema:      s,
		format:      FormatJSON,
		contentType: MediaTypeJSON + "; charset=utf-8",
		marshal:     protojson.MarshalOptions{}.Marshal,
		unmarshal:   protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal,
	}, nil
}

// Protobuf returns the binary protobuf codec.
func Protobuf() (Codec, error) {
	s, err := loadSchema()
	if err != nil {
		return nil, err
	}
	return &messageCodec{
		schema:      s,
		format:      FormatProtobuf,
		contentType: MediaTypeProtobuf,
		marshal:     proto.MarshalOptions{Deterministic: true}.Marshal,
		unmarshal:   proto.UnmarshalOptions{DiscardUnknown: true}.Unmarshal,
	}, nil
}

func (c *messageCodec) Format() Format { return c.format }

func (c *messageCodec) ContentType() string { return c.contentType }

func (c *messageCodec) ResultMessage() string { return messageName(c.schema.result) }

func (c *messageCodec) ListMessage() string { return messageName(c.schema.list) }

func (c *messageCodec) MarshalResult(r customer.Result) ([]byte, error) {
	b, err := c.marshal(c.schema.toResultMessage(r))
	if err != nil {
		return nil, fmt.Errorf("marshal %s as %s: %w", resultMessage, c.format, err)
	}
	return b, nil
}

func (c *messageCodec) UnmarshalResult(data []byte) (customer.Result, error) {
	m := dynamicpb.NewMessage(c.schema.result)
	if err := c.unmarshal(data, m); err != nil {
		return customer.Result{}, fmt.Errorf("unmarshal %s from %s: %w", resultMessage, c.format, err)
	}
	return c.schema.readResult(m)
}

func (c *messageCodec) MarshalList(l customer.List) ([]byte, error) {
	b, err := c.marshal(c.schema.toListMessage(l))
	if err != nil {
		return nil, fmt.Errorf("marshal %s as %s: %w", listMessage, c.format, err)
	}
	return b, nil
}

func (c *messageCodec) UnmarshalList(data []byte) (customer.List, error) {
	m := dynamicpb.NewMessage(c.schema.list)
	if err := c.unmarshal(data, m); err != nil {
		return customer.List{}, fmt.Errorf("unmarshal %s from %s: %w", listMessage, c.format, err)
	}
	return c.schema.readList(m), nil
}
