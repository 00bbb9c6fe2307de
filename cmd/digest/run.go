package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/iotaledger/tools/configuration"
	"github.com/iotaledger/tools/digest"
	"github.com/iotaledger/tools/ds/orderedmap"
	"github.com/iotaledger/tools/logger"
)

const (
	envPrefix = "TOOLS"

	cfgKeyAlgorithm = "digest.algorithm"
	cfgKeyEncoding  = "digest.encoding"
	cfgKeyKey       = "digest.key"
	cfgKeyStrings   = "digest.strings"
	cfgKeyWorkers   = "digest.workers"
)

// ErrUnknownEncoding is returned if the configured output encoding is not supported.
var ErrUnknownEncoding = errors.New("unknown encoding")

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("digest", flag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String("config", "", "path to a JSON or YAML config file")
	flagSet.String(cfgKeyAlgorithm, "md5", "the digest algorithm (md5, blake2b)")
	flagSet.String(cfgKeyEncoding, "hex", "the output encoding of the digests (hex, base58)")
	flagSet.String(cfgKeyKey, "", "key for keyed blake2b digests")
	flagSet.Bool(cfgKeyStrings, false, "digest the arguments themselves instead of the files they name")
	flagSet.Int(cfgKeyWorkers, runtime.NumCPU(), "the number of files that are digested concurrently")

	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the log encoding (console, json)")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, logger.DefaultCfg.OutputPaths, "where to write the logs to")
	flagSet.Bool(logger.ConfigurationKeyDisableCaller, true, "stop annotating logs with the calling function")
	flagSet.Bool(logger.ConfigurationKeyDisableStacktrace, true, "disable automatic stacktrace capturing")

	return flagSet
}

func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	if configFile, _ := flagSet.GetString("config"); configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, errors.Wrap(err, "unable to load flags")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, errors.Wrap(err, "unable to load environment variables")
	}

	// flags given on the command line take precedence over the environment
	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, errors.Wrap(err, "unable to load flags")
	}

	return config, nil
}

func newLogger(config *configuration.Configuration) (*zap.SugaredLogger, error) {
	return logger.NewRootLogger(logger.Config{
		Level:             config.String(logger.ConfigurationKeyLevel),
		DisableCaller:     config.Bool(logger.ConfigurationKeyDisableCaller),
		DisableStacktrace: config.Bool(logger.ConfigurationKeyDisableStacktrace),
		Encoding:          config.String(logger.ConfigurationKeyEncoding),
		OutputPaths:       config.Strings(logger.ConfigurationKeyOutputPaths),
	})
}

func newHasher(config *configuration.Configuration) (digest.Hasher, error) {
	algorithm := config.String(cfgKeyAlgorithm)

	if key := config.String(cfgKeyKey); key != "" {
		if algorithm != "blake2b" {
			return nil, errors.Errorf("keyed digests are not supported by %s", algorithm)
		}

		return digest.NewKeyedBLAKE2b128([]byte(key))
	}

	return digest.HasherByName(algorithm)
}

func encoder(name string) (func(digest.Digest) string, error) {
	switch name {
	case "hex":
		return digest.Digest.Hex, nil
	case "base58":
		return digest.Digest.Base58, nil
	default:
		return nil, errors.Wrapf(ErrUnknownEncoding, "unable to use %q", name)
	}
}

func run(ctx context.Context, args []string, output io.Writer) error {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	config, err := loadConfiguration(flagSet)
	if err != nil {
		return err
	}

	log, err := newLogger(config)
	if err != nil {
		return err
	}
	//nolint:errcheck // syncing stderr fails on some platforms
	defer log.Sync()

	hasher, err := newHasher(config)
	if err != nil {
		return err
	}

	encode, err := encoder(config.String(cfgKeyEncoding))
	if err != nil {
		return err
	}

	var digests *orderedmap.OrderedMap[string, digest.Digest]
	if config.Bool(cfgKeyStrings) {
		digests = orderedmap.New[string, digest.Digest]()
		for _, arg := range flagSet.Args() {
			digests.Set(arg, hasher.Sum([]byte(arg)))
		}
	} else {
		if digests, err = digest.SumFiles(ctx, flagSet.Args(),
			digest.WithHasher(hasher),
			digest.WithWorkerCount(config.Int(cfgKeyWorkers)),
			digest.WithLogger(log),
		); err != nil {
			return err
		}
	}

	log.Debugw("computed digests", "count", digests.Size(), "algorithm", config.String(cfgKeyAlgorithm))

	for name, value := range digests.All() {
		if _, err := fmt.Fprintf(output, "%s  %s\n", encode(value), name); err != nil {
			return errors.Wrap(err, "unable to write output")
		}
	}

	return nil
}
