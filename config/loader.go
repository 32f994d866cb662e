package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// LoadWithEnv reads <name>.yaml from the first directory that has it, overlays environment
// variables and decodes the result into T. Directories are relative to the working
// directory; the working directory itself is always searched first.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	// Env keys are resolved against the YAML tree so that POSTGRES_SSLMODE lands on
	// postgres.sslMode rather than creating postgres.sslmode.
	yamlTree := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlTree), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return cfg, nil
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

func findConfigFile(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}

	candidates := []string{filepath.Join(wd, filename)}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, filename))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found (searched %s)", filename, strings.Join(candidates, ", "))
}

// canonicalizeEnvKey maps FOO_BAR_BAZ onto the dotted koanf path, reusing the spelling of
// keys that already exist in tree. Segments below an unknown key are kept lowercase.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	segments := strings.FieldsFunc(strings.ToLower(rawKey), func(r rune) bool { return r == '_' })
	path := make([]string, 0, len(segments))

	node := tree
	for _, segment := range segments {
		key, child, ok := lookupKey(node, segment)
		if !ok {
			path = append(path, segment)
			node = nil

			continue
		}
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func lookupKey(node map[string]any, segment string) (string, map[string]any, bool) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// foldKey lowercases s and drops everything that is not a letter or digit.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD} for n = 0, 1, …
// and stops at the first index without a host and port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		get := func(field string) string {
			v, _ := lookup(prefix + field)

			return v
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}
		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
