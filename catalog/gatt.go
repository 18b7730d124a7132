package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/gatt"
)

func registerGATT(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "gatt/attribute-table",
		Topic:      "gatt",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Build a sensor's attribute table and walk it by handle.",
		Run:        runAttributeTable,
	})

	reg.Register(drill.Drill{
		Name:       "gatt/notifications",
		Topic:      "gatt",
		Difficulty: drill.Medium,
		Minutes:    25,
		Summary:    "Subscriptions gate notifications, the way the CCCD does.",
		Run:        runNotifications,
	})
}

func runAttributeTable(w io.Writer) error {
	p := gatt.NewPeripheral("TempSensor")

	svc := p.AddService(gatt.UUID16(0x181A)) // environmental sensing
	temp := p.AddCharacteristic(svc, gatt.UUID16(0x2A6E),
		gatt.PropRead|gatt.PropNotify, []byte{0x19, 0x00})
	name := p.AddCharacteristic(svc, gatt.UUID16(0x2A00),
		gatt.PropRead, []byte("TempSensor"))

	fmt.Fprintf(w, "service %s at handle %d\n", svc.UUID, svc.Handle)
	for _, c := range svc.Characteristics {
		fmt.Fprintf(w, "  characteristic %s at handle %d\n", c.UUID, c.Handle)
	}

	value, err := p.Read(temp.Handle)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "read temperature value: % x\n", value)

	_, invalidErr := p.Read(999)

	expanded := gatt.UUID16(0x2A6E).Expand()
	fmt.Fprintf(w, "expanded UUID: %s\n", expanded)

	return firstErr(
		check(temp.Handle == 1 && name.Handle == 2,
			"handles out of declaration order: %d, %d", temp.Handle, name.Handle),
		check(errors.Is(invalidErr, gatt.ErrInvalidHandle),
			"reading handle 999 must fail with an invalid handle"),
		check(value[0] == 0x19, "temperature value: % x", value),
		check(expanded.String() == "00002A6E-0000-1000-8000-00805F9B34FB",
			"expanded UUID: %s", expanded),
	)
}

func runNotifications(w io.Writer) error {
	p := gatt.NewPeripheral("TempSensor")
	svc := p.AddService(gatt.UUID16(0x181A))
	temp := p.AddCharacteristic(svc, gatt.UUID16(0x2A6E),
		gatt.PropRead|gatt.PropNotify, []byte{0x19, 0x00})
	name := p.AddCharacteristic(svc, gatt.UUID16(0x2A00),
		gatt.PropRead, []byte("TempSensor"))

	// Without a subscription, a value change notifies nobody.
	var got [][]byte
	p.UpdateValue(temp, []byte{0x1A, 0x00})

	token, err := p.Subscribe(temp, func(v []byte) {
		got = append(got, v)
	})
	if err != nil {
		return err
	}

	p.UpdateValue(temp, []byte{0x1B, 0x00})
	fmt.Fprintf(w, "received %d notification(s) after subscribing\n", len(got))

	_, err = p.Subscribe(name, func([]byte) {})
	fmt.Fprintf(w, "subscribing to a read-only characteristic: %v\n", err)

	if e := firstErr(
		check(len(got) == 1, "got %d notifications, want 1", len(got)),
		check(got[0][0] == 0x1B, "notified value: % x", got[0]),
		check(errors.Is(err, gatt.ErrNotifyUnsupported),
			"expected ErrNotifyUnsupported, got %v", err),
	); e != nil {
		return e
	}

	p.Unsubscribe(temp, token)
	p.UpdateValue(temp, []byte{0x1C, 0x00})
	fmt.Fprintf(w, "after unsubscribing, still %d notification(s)\n", len(got))

	return check(len(got) == 1, "unsubscribed callback still fired")
}
