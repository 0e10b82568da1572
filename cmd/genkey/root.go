package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/genkey/core/config"
	"github.com/dmitrymomot/genkey/core/logger"
	"github.com/dmitrymomot/genkey/pkg/kdf"
	"github.com/dmitrymomot/genkey/pkg/keydigest"
	"github.com/dmitrymomot/genkey/pkg/keymaterial"
	"github.com/dmitrymomot/genkey/pkg/secretfile"
)

const (
	flagEnvFile  = "env-file"
	flagLength   = "length"
	flagFQDN     = "fqdn"
	flagCodeName = "code-name"
)

var errIncompleteInfoNames = fmt.Errorf("%w: --%s and --%s must be set together", keymaterial.ErrInvalidArgument, flagFQDN, flagCodeName)

type app struct {
	environment map[string]string

	envFile  string
	length   int
	fqdn     string
	codeName string
}

func newRootCmd(environment map[string]string) *cobra.Command {
	a := &app{environment: environment}

	root := &cobra.Command{
		Use:   "genkey",
		Short: "Derive a key with HKDF-SHA256 and print its fingerprint",
		Long: `genkey reads the IKM, pepper, salt and info from the files named by
ENV_SECRET_IKM_LOCATION, ENV_SECRET_PEPPER_LOCATION, ENV_PUBLIC_SALT_LOCATION
and ENV_PUBLIC_INFO_LOCATION, derives a key with HKDF-SHA256 and prints the
SHA-256 fingerprint of that key as hex. The key itself is never printed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runGenerate,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, flagEnvFile, "", "dotenv file with additional variables")
	flags.IntVarP(&a.length, flagLength, "n", kdf.DefaultOutputByteCount, "derived key length in bytes (default from GENKEY_OUTPUT_BYTE_COUNT)")
	flags.StringVar(&a.fqdn, flagFQDN, "", "build the info from this FQDN instead of reading the info file")
	flags.StringVar(&a.codeName, flagCodeName, "", "code name appended to --fqdn to build the info")

	root.AddCommand(newVerifyCmd(a))
	return root
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	key, log, err := a.deriveKey(cmd)
	if err != nil {
		return err
	}
	defer key.Wipe()

	fp := keydigest.Of(key)
	log.Info("fingerprint computed", logger.Action("generate"), logger.Fingerprint(fp))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), fp)
	return err
}

func (a *app) loadConfig() (Config, error) {
	var cfg Config
	opts := []config.Option{config.WithEnvironment(a.environment)}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFiles(a.envFile))
	}
	if err := config.Parse(&cfg, opts...); err != nil {
		return Config{}, fmt.Errorf("%w: %w", keymaterial.ErrInvalidArgument, err)
	}
	return cfg, nil
}

func (a *app) newLogger(cmd *cobra.Command, cfg Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", keymaterial.ErrInvalidArgument, err)
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...), nil
}

// deriveKey gathers the inputs, validates them and derives the key. Every
// intermediate secret buffer is wiped before returning.
func (a *app) deriveKey(cmd *cobra.Command) (kdf.DerivedKey, *slog.Logger, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return kdf.DerivedKey{}, nil, err
	}

	log, err := a.newLogger(cmd, cfg)
	if err != nil {
		return kdf.DerivedKey{}, nil, err
	}

	outputByteCount := cfg.OutputByteCount
	if cmd.Flags().Changed(flagLength) {
		outputByteCount = a.length
	}

	if (a.fqdn == "") != (a.codeName == "") {
		return kdf.DerivedKey{}, nil, errIncompleteInfoNames
	}

	r := secretfile.NewReader(
		secretfile.WithMaxReadBytes(cfg.MaxReadBytes),
		secretfile.WithLogger(log),
	)

	private, err := readPrivate(r, cfg)
	if err != nil {
		return kdf.DerivedKey{}, nil, err
	}
	defer private.Wipe()

	public, err := a.readPublic(r, cfg)
	if err != nil {
		return kdf.DerivedKey{}, nil, err
	}

	key, err := kdf.NewGenerator(private, public).NewKey(kdf.WithOutputByteCount(outputByteCount))
	if err != nil {
		return kdf.DerivedKey{}, nil, err
	}

	log.Debug("key derived",
		logger.Component("kdf"),
		logger.Length("output_bytes", key.Len()),
		logger.Length("salt_bytes", public.Salt.Len()),
		logger.Length("info_bytes", public.Info.Len()),
	)
	return key, log, nil
}

func readPrivate(r *secretfile.Reader, cfg Config) (kdf.Private, error) {
	ikmBytes, err := r.Read(secretfile.Source{Env: envIkmLocation, Path: cfg.IkmLocation})
	if err != nil {
		return kdf.Private{}, err
	}
	defer clear(ikmBytes)

	ikm, err := keymaterial.NewIkm(ikmBytes)
	if err != nil {
		return kdf.Private{}, err
	}

	pepperBytes, err := r.Read(secretfile.Source{Env: envPepperLocation, Path: cfg.PepperLocation})
	if err != nil {
		ikm.Wipe()
		return kdf.Private{}, err
	}
	defer clear(pepperBytes)

	return kdf.NewPrivate(ikm, keymaterial.NewPepper(pepperBytes)), nil
}

func (a *app) readPublic(r *secretfile.Reader, cfg Config) (kdf.Public, error) {
	saltBytes, err := r.Read(secretfile.Source{Env: envSaltLocation, Path: cfg.SaltLocation})
	if err != nil {
		return kdf.Public{}, err
	}
	salt, err := keymaterial.NewSalt(saltBytes)
	if err != nil {
		return kdf.Public{}, err
	}

	var info keymaterial.Info
	if a.fqdn != "" {
		info, err = keymaterial.InfoFromNames(a.fqdn, a.codeName)
	} else {
		var infoBytes []byte
		infoBytes, err = r.Read(secretfile.Source{Env: envInfoLocation, Path: cfg.InfoLocation})
		if err == nil {
			info, err = keymaterial.NewInfo(infoBytes)
		}
	}
	if err != nil {
		return kdf.Public{}, err
	}

	return kdf.Public{Salt: salt, Info: info}, nil
}

