// Package genkey derives symmetric keys from secret and public inputs with
// HKDF-SHA256 and exposes safe-to-print fingerprints of those keys.
//
// The module is split into small packages:
//
//   - pkg/keymaterial: validated IKM, pepper, salt and info values
//   - pkg/kdf: HKDF-SHA256 derivation and the DerivedKey type
//   - pkg/keydigest: SHA-256 fingerprints, parsing and verification
//   - pkg/secretfile: capped reads of input files named by environment variables
//   - core/config: environment-based configuration
//   - core/logger: slog factory and attribute helpers
//   - cmd/genkey: the command-line tool
//
// End to end:
//
//	ikm, err := keymaterial.NewIkm(ikmBytes)
//	if err != nil {
//		return err
//	}
//	salt, err := keymaterial.NewSalt(saltBytes)
//	if err != nil {
//		return err
//	}
//	info, err := keymaterial.NewInfo(infoBytes)
//	if err != nil {
//		return err
//	}
//
//	key, err := kdf.NewKey(ikm, keymaterial.NewPepper(pepperBytes), salt, info)
//	if err != nil {
//		return err
//	}
//	defer key.Wipe()
//
//	fmt.Println(keydigest.Of(key))
//
// Every validation failure matches keymaterial.ErrInvalidArgument with
// errors.Is. Raw keys are never printed or logged.
package genkey
