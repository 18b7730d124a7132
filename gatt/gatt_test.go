package gatt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillab/kata/gatt"
)

// Assigned numbers used by the corpus' walkthrough.
var (
	tempServiceUUID = gatt.UUID16(0x1809)
	tempMeasUUID    = gatt.UUID16(0x2A1C)
	battServiceUUID = gatt.UUID16(0x180F)
	battLevelUUID   = gatt.UUID16(0x2A19)
	ctrlPointUUID   = gatt.MustParse("00010000-0002-1000-8000-00805F9B34FB")
)

func buildSensor() (*gatt.Peripheral, *gatt.Characteristic, *gatt.Characteristic) {
	p := gatt.NewPeripheral("TempSensor")

	temp := p.AddService(tempServiceUUID)
	meas := p.AddCharacteristic(temp, tempMeasUUID,
		gatt.PropRead|gatt.PropNotify, []byte{0x00})

	batt := p.AddService(battServiceUUID)
	level := p.AddCharacteristic(batt, battLevelUUID, gatt.PropRead, []byte{100})
	p.AddCharacteristic(batt, ctrlPointUUID, gatt.PropWrite, nil)

	return p, meas, level
}

func TestUUIDParsing(t *testing.T) {
	u, err := gatt.Parse("1809")
	require.NoError(t, err)
	assert.Equal(t, "1809", u.String())
	assert.True(t, u.Equal(tempServiceUUID))

	full, err := gatt.Parse("00001809-0000-1000-8000-00805F9B34FB")
	require.NoError(t, err)
	assert.True(t, full.Equal(tempServiceUUID),
		"a 16-bit UUID expands into the base UUID")
	assert.Equal(t, "00001809-0000-1000-8000-00805F9B34FB", full.String())

	_, err = gatt.Parse("180")
	assert.Error(t, err)
	_, err = gatt.Parse("xxxx")
	assert.Error(t, err)

	assert.False(t, ctrlPointUUID.Equal(tempServiceUUID))
}

func TestAttributeTableLayout(t *testing.T) {
	p, meas, level := buildSensor()

	svcs := p.Services()
	require.Len(t, svcs, 2)

	// Handles are assigned in declaration order.
	assert.Equal(t, uint16(1), svcs[0].Handle)
	assert.Equal(t, uint16(2), meas.Handle)
	assert.Equal(t, uint16(3), svcs[1].Handle)
	assert.Equal(t, uint16(4), level.Handle)

	found, ok := p.FindCharacteristic(battLevelUUID)
	require.True(t, ok)
	assert.Same(t, level, found)

	_, ok = p.FindCharacteristic(gatt.UUID16(0xFFFF))
	assert.False(t, ok)
}

func TestReadWritePermissions(t *testing.T) {
	p, meas, level := buildSensor()

	v, err := p.Read(level.Handle)
	require.NoError(t, err)
	assert.Equal(t, []byte{100}, v)

	err = p.Write(level.Handle, []byte{50})
	assert.ErrorIs(t, err, gatt.ErrWriteNotPermitted)

	ctrl, ok := p.FindCharacteristic(ctrlPointUUID)
	require.True(t, ok)

	require.NoError(t, p.Write(ctrl.Handle, []byte{0x01}))
	_, err = p.Read(ctrl.Handle)
	assert.ErrorIs(t, err, gatt.ErrReadNotPermitted)

	_, err = p.Read(0x99)
	assert.ErrorIs(t, err, gatt.ErrInvalidHandle)
	assert.ErrorIs(t, p.Write(0x99, nil), gatt.ErrInvalidHandle)

	// Reads return copies, not aliases.
	v, _ = p.Read(meas.Handle)
	v[0] = 0xEE
	again, _ := p.Read(meas.Handle)
	assert.Equal(t, []byte{0x00}, again)
}

func TestNotifications(t *testing.T) {
	p, meas, level := buildSensor()

	var got [][]byte
	token, err := p.Subscribe(meas, func(v []byte) {
		got = append(got, v)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.SubscriberCount(meas))

	p.UpdateValue(meas, []byte{0x19})
	p.UpdateValue(meas, []byte{0x1A})

	require.Len(t, got, 2)
	assert.Equal(t, []byte{0x19}, got[0])
	assert.Equal(t, []byte{0x1A}, got[1])

	p.Unsubscribe(meas, token)
	p.UpdateValue(meas, []byte{0x1B})
	assert.Len(t, got, 2, "no notification after unsubscribe")

	// A read-only characteristic cannot be subscribed: the missing-CCCD
	// troubleshooting case.
	_, err = p.Subscribe(level, func([]byte) {})
	assert.ErrorIs(t, err, gatt.ErrNotifyUnsupported)

	_, err = p.Subscribe(meas, nil)
	assert.Error(t, err)
}
