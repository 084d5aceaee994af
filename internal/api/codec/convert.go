package codec

import (
	"customer-catalog/internal/domain/customer"
	"errors"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

var errEmptyOutcome = errors.New("customer result carries neither result nor error")

func (s *schema) fillCustomer(m protoreflect.Message, c *customer.Customer) {
	m.Set(s.customerID, protoreflect.ValueOfInt32(c.ID))
	for _, tf := range s.customerText {
		m.Set(tf.fd, protoreflect.ValueOfString(*tf.ref(c)))
	}
}

func (s *schema) readCustomer(m protoreflect.Message) customer.Customer {
	var c customer.Customer
	c.ID = int32(m.Get(s.customerID).Int())
	for _, tf := range s.customerText {
		*tf.ref(&c) = m.Get(tf.fd).String()
	}
	return c
}

func (s *schema) toResultMessage(r customer.Result) *dynamicpb.Message {
	m := dynamicpb.NewMessage(s.result)
	switch {
	case r.Error != nil:
		e := m.Mutable(s.resultError).Message()
		e.Set(s.errorMsg, protoreflect.ValueOfString(r.Error.Message))
		e.Set(s.errorCode, protoreflect.ValueOfString(r.Error.Code))
	case r.Customer != nil:
		s.fillCustomer(m.Mutable(s.resultValue).Message(), r.Customer)
	}
	return m
}

func (s *schema) readResult(m protoreflect.Message) (customer.Result, error) {
	fd := m.WhichOneof(s.outcome)
	if fd == nil {
		return customer.Result{}, errEmptyOutcome
	}
	if fd.Number() == s.resultError.Number() {
		e := m.Get(fd).Message()
		return customer.Failed(e.Get(s.errorMsg).String(), e.Get(s.errorCode).String()), nil
	}
	return customer.Found(s.readCustomer(m.Get(fd).Message())), nil
}

func (s *schema) toListMessage(l customer.List) *dynamicpb.Message {
	m := dynamicpb.NewMessage(s.list)
	if len(l.Customers) == 0 {
		return m
	}
	items := m.Mutable(s.listCustomers).List()
	for i := range l.Customers {
		el := items.NewElement()
		s.fillCustomer(el.Message(), &l.Customers[i])
		items.Append(el)
	}
	return m
}

func (s *schema) readList(m protoreflect.Message) customer.List {
	items := m.Get(s.listCustomers).List()
	customers := make([]customer.Customer, 0, items.Len())
	for i := 0; i < items.Len(); i++ {
		customers = append(customers, s.readCustomer(items.Get(i).Message()))
	}
	return customer.List{Customers: customers}
}
