//go:build js && wasm

package storage

import (
	"fmt"
	"syscall/js"
)

// Browser is window.localStorage. Access can throw (private mode, disabled
// storage, quota); those exceptions surface as errors.
type Browser struct{}

func (Browser) area() (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()
	v = js.Global().Get("localStorage")
	if v.IsUndefined() || v.IsNull() {
		return v, ErrUnavailable
	}
	return v, nil
}

func (b Browser) GetItem(key string) (value string, ok bool, err error) {
	area, err := b.area()
	if err != nil {
		return "", false, err
	}
	defer func() {
		if r := recover(); r != nil {
			value, ok, err = "", false, fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()
	v := area.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (b Browser) SetItem(key, value string) (err error) {
	area, err := b.area()
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrQuotaExceeded, r)
		}
	}()
	area.Call("setItem", key, value)
	return nil
}
