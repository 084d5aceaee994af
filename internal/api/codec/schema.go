package codec

import (
	"customer-catalog/internal/domain/customer"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	SchemaFile    = "catalog/v1/customer.proto"
	schemaPackage = "catalog.v1"

	customerMessage = "Customer"
	errorMessage    = "Error"
	resultMessage   = "CustomerResult"
	listMessage     = "CustomerList"
)

// schema is the single protobuf description of every envelope. Both codecs
// are driven by it, so the text and binary forms carry the same fields.
type schema struct {
	customer protoreflect.MessageDescriptor
	result   protoreflect.MessageDescriptor
	list     protoreflect.MessageDescriptor

	customerID   protoreflect.FieldDescriptor
	customerText []textField

	errorMsg  protoreflect.FieldDescriptor
	errorCode protoreflect.FieldDescriptor

	outcome     protoreflect.OneofDescriptor
	resultValue protoreflect.FieldDescriptor
	resultError protoreflect.FieldDescriptor

	listCustomers protoreflect.FieldDescriptor
}

type textField struct {
	fd  protoreflect.FieldDescriptor
	ref func(*customer.Customer) *string
}

var loadSchema = sync.OnceValues(buildSchema)

func buildSchema() (*schema, error) {
	file, err := protodesc.NewFile(schemaDescriptor(), new(protoregistry.Files))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", SchemaFile, err)
	}
	msgs := file.Messages()
	s := &schema{
		customer: msgs.ByName(customerMessage),
		result:   msgs.ByName(resultMessage),
		list:     msgs.ByName(listMessage),
	}
	errDesc := msgs.ByName(errorMessage)

	s.customerID = s.customer.Fields().ByName("id")
	for _, f := range customer.TextFields() {
		fd := s.customer.Fields().ByJSONName(f.Name)
		if fd == nil {
			return nil, fmt.Errorf("schema has no field for %q", f.Name)
		}
		s.customerText = append(s.customerText, textField{fd: fd, ref: f.Ref})
	}
	s.errorMsg = errDesc.Fields().ByName("message")
	s.errorCode = errDesc.Fields().ByName("code")
	s.outcome = s.result.Oneofs().ByName("outcome")
	s.resultValue = s.result.Fields().ByName("result")
	s.resultError = s.result.Fields().ByName("error")
	s.listCustomers = s.list.Fields().ByName("customer")
	return s, nil
}

func schemaDescriptor() *descriptorpb.FileDescriptorProto {
	customerFields := []*descriptorpb.FieldDescriptorProto{
		scalarField("id", "id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32),
	}
	for i, f := range customer.TextFields() {
		customerFields = append(customerFields,
			scalarField(snakeCase(f.Name), f.Name, int32(i+2), descriptorpb.FieldDescriptorProto_TYPE_STRING))
	}

	resultField := messageField("result", "result", 1, customerMessage)
	resultField.OneofIndex = proto.Int32(0)
	errorField := messageField("error", "error", 2, errorMessage)
	errorField.OneofIndex = proto.Int32(0)

	listField := messageField("customer", "customer", 1, customerMessage)
	listField.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(SchemaFile),
		Package: proto.String(schemaPackage),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String(customerMessage),
				Field: customerFields,
			},
			{
				Name: proto.String(errorMessage),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("message", "message", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("code", "code", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				},
			},
			{
				Name:      proto.String(resultMessage),
				Field:     []*descriptorpb.FieldDescriptorProto{resultField, errorField},
				OneofDecl: []*descriptorpb.OneofDescriptorProto{{Name: proto.String("outcome")}},
			},
			{
				Name:  proto.String(listMessage),
				Field: []*descriptorpb.FieldDescriptorProto{listField},
			},
		},
	}
}

func scalarField(name, jsonName string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
	}
}

func messageField(name, jsonName string, number int32, message string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String("." + schemaPackage + "." + message),
	}
}

// snakeCase maps legalEntityCodeA to legal_entity_code_a.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func messageName(md protoreflect.MessageDescriptor) string {
	return string(md.FullName())
}
