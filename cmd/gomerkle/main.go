package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/vaktibabat/mssmt"
)

// gomerkle is a small interactive demonstrator for the mssmt package. It
// reads "insert <key> <value> <sum>", "get <key>", "delete <key>" and
// "prove <key>" commands from stdin, one per line, and reports the
// resulting root hash, total sum and (for "prove") a verified proof.
func main() {

	var (
		flagHasher string
		flagLog    string
	)

	pflag.StringVarP(&flagHasher, "hasher", "H", "sha256", "digest primitive: sha256 or blake2b")
	pflag.StringVarP(&flagLog, "log", "l", "info", "log output level")
	pflag.Parse()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(flagLog)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse log level")
	}
	log = log.Level(level)

	var hasher mssmt.Hasher
	switch flagHasher {
	case "sha256":
		hasher = mssmt.NewSHA256Hasher()
	case "blake2b":
		hasher = mssmt.NewBlake2bHasher()
	default:
		log.Fatal().Str("hasher", flagHasher).Msg("unknown hasher")
	}

	tree := mssmt.NewWithHasher(hasher)

	log.Info().Str("hasher", flagHasher).Msg("gomerkle starting")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "insert":
			tree, err = runInsert(tree, fields[1:])
		case "get":
			err = runGet(tree, fields[1:])
		case "delete":
			tree, err = runDelete(tree, fields[1:])
		case "prove":
			err = runProve(tree, hasher, fields[1:])
		default:
			err = fmt.Errorf("unknown command %q", fields[0])
		}

		if err != nil {
			log.Error().Err(err).Strs("command", fields).Msg("command failed")
			continue
		}

		log.Info().
			Str("root", hex.EncodeToString(tree.RootHash().Bytes())).
			Uint64("sum", tree.TotalSum()).
			Int("count", tree.Count()).
			Msg("tree state")
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("could not read stdin")
	}
}

func parseKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("could not decode key: %w", err)
	}
	return key, nil
}

func runInsert(tree *mssmt.Tree, args []string) (*mssmt.Tree, error) {
	if len(args) != 3 {
		return tree, fmt.Errorf("usage: insert <key-hex> <value> <sum>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return tree, err
	}
	sum, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return tree, fmt.Errorf("could not parse sum: %w", err)
	}
	next, err := tree.Insert(key, []byte(args[1]), sum)
	if err != nil {
		return tree, err
	}
	return next, nil
}

func runGet(tree *mssmt.Tree, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <key-hex>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	value, sum, err := tree.Get(key)
	if err != nil {
		return err
	}
	fmt.Printf("value=%q sum=%d\n", value, sum)
	return nil
}

func runDelete(tree *mssmt.Tree, args []string) (*mssmt.Tree, error) {
	if len(args) != 1 {
		return tree, fmt.Errorf("usage: delete <key-hex>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return tree, err
	}
	next, err := tree.Delete(key)
	if err != nil {
		return tree, err
	}
	return next, nil
}

func runProve(tree *mssmt.Tree, hasher mssmt.Hasher, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: prove <key-hex>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	value, sum, err := tree.Get(key)
	if err != nil {
		return err
	}
	proof, err := tree.MerkleProof(key)
	if err != nil {
		return err
	}
	ok := mssmt.VerifyProofWithHasher(hasher, tree.RootHash(), key, value, sum, proof)
	fmt.Printf("proof length=%d verifies=%t\n", len(proof.Siblings), ok)
	return nil
}
