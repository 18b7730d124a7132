package gatt

import (
	"errors"
	"fmt"

	"github.com/rs/xid"
)

// Property flags of a characteristic, matching the GATT property bits.
const (
	PropRead uint8 = 1 << iota
	PropWriteNoResponse
	PropWrite
	PropNotify
	PropIndicate
)

// ATT-style errors surfaced to the simulated central.
var (
	ErrReadNotPermitted  = errors.New("gatt: read not permitted")
	ErrWriteNotPermitted = errors.New("gatt: write not permitted")
	ErrNotifyUnsupported = errors.New("gatt: characteristic does not notify")
	ErrInvalidHandle     = errors.New("gatt: invalid attribute handle")
)

// Characteristic is one value in a service's attribute table.
type Characteristic struct {
	UUID       UUID
	Properties uint8
	Handle     uint16

	value       []byte
	subscribers map[string]func([]byte)
}

// Service groups characteristics under a service UUID.
type Service struct {
	UUID            UUID
	Handle          uint16
	Characteristics []*Characteristic
}

// Peripheral is the simulated device: a name and an attribute table built
// from services in declaration order.
type Peripheral struct {
	name       string
	services   []*Service
	nextHandle uint16

	byHandle map[uint16]*Characteristic
}

// NewPeripheral creates an empty peripheral.
func NewPeripheral(name string) *Peripheral {
	return &Peripheral{
		name:       name,
		nextHandle: 1,
		byHandle:   make(map[uint16]*Characteristic),
	}
}

// Name returns the advertised device name.
func (p *Peripheral) Name() string { return p.name }

// AddService appends a service and returns it for characteristic setup.
// Handles are assigned in declaration order, like a real attribute table.
func (p *Peripheral) AddService(uuid UUID) *Service {
	svc := &Service{
		UUID:   uuid,
		Handle: p.nextHandle,
	}
	p.nextHandle++

	p.services = append(p.services, svc)

	return svc
}

// AddCharacteristic appends a characteristic with the given properties and
// initial value to svc.
func (p *Peripheral) AddCharacteristic(
	svc *Service,
	uuid UUID,
	properties uint8,
	value []byte,
) *Characteristic {
	c := &Characteristic{
		UUID:        uuid,
		Properties:  properties,
		Handle:      p.nextHandle,
		value:       append([]byte(nil), value...),
		subscribers: make(map[string]func([]byte)),
	}
	p.nextHandle++

	svc.Characteristics = append(svc.Characteristics, c)
	p.byHandle[c.Handle] = c

	return c
}

// Services returns the services in declaration order.
func (p *Peripheral) Services() []*Service { return p.services }

// FindCharacteristic locates a characteristic by UUID across all services.
func (p *Peripheral) FindCharacteristic(uuid UUID) (*Characteristic, bool) {
	for _, svc := range p.services {
		for _, c := range svc.Characteristics {
			if c.UUID.Equal(uuid) {
				return c, true
			}
		}
	}

	return nil, false
}

// Read returns a copy of the value at the given handle, enforcing the
// characteristic's read permission.
func (p *Peripheral) Read(handle uint16) ([]byte, error) {
	c, ok := p.byHandle[handle]
	if !ok {
		return nil, ErrInvalidHandle
	}

	if c.Properties&PropRead == 0 {
		return nil, ErrReadNotPermitted
	}

	return append([]byte(nil), c.value...), nil
}

// Write replaces the value at the given handle, enforcing write permission,
// and notifies subscribers when the characteristic notifies.
func (p *Peripheral) Write(handle uint16, value []byte) error {
	c, ok := p.byHandle[handle]
	if !ok {
		return ErrInvalidHandle
	}

	if c.Properties&(PropWrite|PropWriteNoResponse) == 0 {
		return ErrWriteNotPermitted
	}

	p.setValue(c, value)

	return nil
}

// UpdateValue is the peripheral-side value change (a new sensor reading).
// Unlike Write it needs no permission, and it triggers notifications.
func (p *Peripheral) UpdateValue(c *Characteristic, value []byte) {
	p.setValue(c, value)
}

// Subscribe registers fn for value changes of c, the CCCD write of the
// simulation. It returns a token for Unsubscribe. Subscribing to a
// characteristic without notify/indicate support fails, the symptom checked
// first when "notifications don't arrive".
func (p *Peripheral) Subscribe(c *Characteristic, fn func([]byte)) (string, error) {
	if c.Properties&(PropNotify|PropIndicate) == 0 {
		return "", ErrNotifyUnsupported
	}

	if fn == nil {
		return "", fmt.Errorf("gatt: nil notification callback")
	}

	token := xid.New().String()
	c.subscribers[token] = fn

	return token, nil
}

// Unsubscribe removes a subscription token.
func (p *Peripheral) Unsubscribe(c *Characteristic, token string) {
	delete(c.subscribers, token)
}

// SubscriberCount returns the number of active subscriptions on c.
func (p *Peripheral) SubscriberCount(c *Characteristic) int {
	return len(c.subscribers)
}

func (p *Peripheral) setValue(c *Characteristic, value []byte) {
	c.value = append(c.value[:0], value...)

	if c.Properties&(PropNotify|PropIndicate) == 0 {
		return
	}

	for _, fn := range c.subscribers {
		fn(append([]byte(nil), c.value...))
	}
}
