// Package secretfile reads key derivation inputs from files whose paths are
// named by environment variables.
//
// Reads are capped (1 MiB by default) to bound memory use. Content beyond the
// cap is dropped, not treated as an error; a warning is logged when that
// happens. A source with no path, or a file that cannot be opened, fails with
// an error matching keymaterial.ErrInvalidArgument.
//
//	r := secretfile.NewReader(secretfile.WithLogger(log))
//	ikm, err := r.Read(secretfile.Source{
//		Env:  "ENV_SECRET_IKM_LOCATION",
//		Path: os.Getenv("ENV_SECRET_IKM_LOCATION"),
//	})
package secretfile
