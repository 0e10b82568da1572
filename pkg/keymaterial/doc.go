// Package keymaterial provides validated wrappers around the raw inputs of an
// HKDF key derivation: the secret input keying material (IKM), an optional
// secret pepper, and the public salt and info values.
//
// Every value is built through a validating constructor that copies its input,
// so a constructed value never aliases a caller buffer and never changes
// afterwards. Secret values do not hand out their bytes; they are reachable only
// through a scoped WithBytes callback and render as "[REDACTED]" when printed
// or logged.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/genkey/pkg/keymaterial"
//
//	ikm, err := keymaterial.NewIkm(secret)
//	if err != nil {
//		return err // errors.Is(err, keymaterial.ErrInvalidArgument)
//	}
//	defer ikm.Wipe()
//
//	salt, err := keymaterial.NewSalt(saltBytes)
//	if err != nil {
//		return err
//	}
//
//	info, err := keymaterial.InfoFromNames("api.example.com", "orion")
//	if err != nil {
//		return err
//	}
//
//	pepper := keymaterial.NewPepper(pepperBytes)
//	ekm := pepper.Combine(ikm) // pepper || ikm
//	defer ekm.Wipe()
//
// # Length Floors
//
// The constructors reject inputs shorter than a fixed floor:
//   - IKM: 22 bytes (ErrTooShortSecret)
//   - Salt: 13 bytes (ErrTooShortSalt)
//   - Info: 10 bytes (ErrTooShortInfo)
//   - Pepper: no floor, the empty pepper means "no pepper"
//
// The floors catch obviously broken inputs. They are not an entropy estimate.
//
// # Pepper Ordering
//
// The effective keying material is the pepper followed by the IKM. The order is
// part of the derivation contract: swapping it produces a different key.
package keymaterial
