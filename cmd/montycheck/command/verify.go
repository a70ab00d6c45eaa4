package command

import (
	"context"
	"math/big"
	"math/rand"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	moduliFlag  = "moduli"
	samplesFlag = "samples"
	workersFlag = "workers"
	seedFlag    = "seed"
)

type verifyParams struct {
	bits      int
	rangeName string
	moduli    int
	samples   int
	workers   int
	seed      int64
}

func (rc *RootCommand) getVerifyParams() (verifyParams, error) {
	p := verifyParams{
		bits:      rc.config.GetInt(widthFlag),
		rangeName: rc.config.GetString(rangeFlag),
		moduli:    rc.config.GetInt(moduliFlag),
		samples:   rc.config.GetInt(samplesFlag),
		workers:   rc.config.GetInt(workersFlag),
		seed:      rc.config.GetInt64(seedFlag),
	}
	if p.moduli <= 0 || p.samples <= 0 {
		return p, errors.Wrapf(ErrOutOfRange, "--%s and --%s must be positive", moduliFlag, samplesFlag)
	}
	if p.workers <= 0 {
		p.workers = runtime.GOMAXPROCS(0)
	}
	return p, nil
}

func getVerifyCommand(rc *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run a randomized differential test of all operations against math/big",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := rc.getVerifyParams()
			if err != nil {
				return err
			}
			err = runVerify(cmd.Context(), rc.logger, params)
			if err == nil {
				writeKV(cmd.OutOrStdout(), "VERIFY", "width", params.bits, "range", params.rangeName,
					"moduli", params.moduli, "samples", params.samples, "result", "ok")
			}
			return err
		},
	}
	cmd.Flags().Int(moduliFlag, 16, "number of random moduli to test")
	cmd.Flags().Int(samplesFlag, 256, "number of random inputs per modulus")
	cmd.Flags().Int(workersFlag, 0, "number of parallel workers; 0 means GOMAXPROCS")
	cmd.Flags().Int64(seedFlag, 1, "seed for the random inputs")
	return cmd
}

// runVerify tests params.moduli random moduli (including the smallest and largest one) in parallel.
// All mismatches are collected and returned as a single *multierror.Error.
func runVerify(ctx context.Context, logger *zap.Logger, params verifyParams) error {
	if ctx == nil {
		ctx = context.Background()
	}
	moduli, err := sampleModuli(params)
	if err != nil {
		return err
	}

	var (
		mu     sync.Mutex
		result *multierror.Error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(params.workers)
	for i, n := range moduli {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := getCalculator(params.bits, params.rangeName, n)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(params.seed + int64(i) + 1))
			if err := verifyCalculator(c, rng, params.samples); err != nil {
				logger.Warn("mismatch", zap.Stringer("modulus", n), zap.Error(err))
				mu.Lock()
				result = multierror.Append(result, err)
				mu.Unlock()
				return nil
			}
			logger.Debug("modulus ok", zap.Stringer("modulus", n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failures := 0
	if result != nil {
		failures = len(result.Errors)
	}
	logger.Info("verification finished",
		zap.Int("width", params.bits),
		zap.String("range", params.rangeName),
		zap.Int("moduli", len(moduli)),
		zap.Int("samples", params.samples),
		zap.Int("failures", failures),
	)
	return result.ErrorOrNil()
}

// sampleModuli returns params.moduli many moduli valid for the word size and range variant, starting with 3 and the largest one.
// The moduli are odd, except for the standard form, where about half of the random ones are even.
func sampleModuli(params verifyParams) ([]*big.Int, error) {
	maxN, err := maxModulus(params.bits, params.rangeName)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(params.seed))
	ret := []*big.Int{big.NewInt(3), maxN}
	for len(ret) < params.moduli {
		// uniform odd n in [3, maxN]; for the standard form, uniform n in [2, maxN]
		n := new(big.Int).Rand(rng, new(big.Int).Rsh(maxN, 1))
		n.Lsh(n, 1)
		if params.rangeName != standardRange || rng.Intn(2) == 1 {
			n.Add(n, big.NewInt(1))
		}
		if n.Cmp(big.NewInt(2)) < 0 {
			continue
		}
		ret = append(ret, n)
	}
	return ret[:params.moduli], nil
}

// verifyCalculator compares all operations of c on samples random inputs with math/big.
func verifyCalculator(c calculator, rng *rand.Rand, samples int) error {
	var result *multierror.Error
	n := c.Modulus()
	R := new(big.Int).Lsh(big.NewInt(1), uint(c.Bits()))
	radix := c.Radix()
	mod := func(x *big.Int) *big.Int { return x.Mod(x, n) }
	check := func(op string, got, expected *big.Int, inputs ...*big.Int) {
		if got.Cmp(expected) != 0 {
			result = multierror.Append(result, errors.Wrapf(ErrMismatch, "%s range, %d bits, modulus %v: %s%v gave %v, expected %v",
				c.RangeName(), c.Bits(), n, op, inputs, got, expected))
		}
	}

	for i := 0; i < samples; i++ {
		x := new(big.Int).Rand(rng, n)
		y := new(big.Int).Rand(rng, n)
		z := new(big.Int).Rand(rng, n)
		e := new(big.Int).Rand(rng, R)

		raw, roundTrip := c.Montgomery(x)
		check("convert", roundTrip, x, x)
		check("montgomery", mod(raw), mod(new(big.Int).Mul(x, radix)), x)
		check("add", c.Add(x, y), mod(new(big.Int).Add(x, y)), x, y)
		check("subtract", c.Subtract(x, y), mod(new(big.Int).Sub(x, y)), x, y)
		check("negate", c.Negate(x), mod(new(big.Int).Neg(x)), x)
		check("multiply", c.Multiply(x, y), mod(new(big.Int).Mul(x, y)), x, y)
		check("square", c.Square(x), mod(new(big.Int).Mul(x, x)), x)
		check("fmadd", c.FMAdd(x, y, z), mod(new(big.Int).Add(new(big.Int).Mul(x, y), z)), x, y, z)
		check("fmsub", c.FMSub(x, y, z), mod(new(big.Int).Sub(new(big.Int).Mul(x, y), z)), x, y, z)
		check("fusedsquareadd", c.FusedSquareAdd(x, z), mod(new(big.Int).Add(new(big.Int).Mul(x, x), z)), x, z)
		check("fusedsquaresub", c.FusedSquareSub(x, z), mod(new(big.Int).Sub(new(big.Int).Mul(x, x), z)), x, z)

		// either x - y or y - x
		unordered := c.UnorderedSubtract(x, y)
		if diff := mod(new(big.Int).Sub(x, y)); unordered.Cmp(diff) != 0 {
			check("unorderedsubtract", unordered, mod(new(big.Int).Neg(diff)), x, y)
		}

		pow, err := c.Pow(x, e)
		if err != nil {
			return err
		}
		check("pow", pow, new(big.Int).Exp(x, e, n), x, e)
		powers, err := c.PowArray([]*big.Int{x, y, z}, e)
		if err != nil {
			return err
		}
		for j, base := range []*big.Int{x, y, z} {
			check("powarray", powers[j], new(big.Int).Exp(base, e, n), base, e)
		}
		twoPow, err := c.TwoPow(e)
		if err != nil {
			return err
		}
		check("twopow", twoPow, new(big.Int).Exp(big.NewInt(2), e, n), e)

		expectedInv := new(big.Int).ModInverse(x, n)
		inv, ok := c.Inverse(x)
		switch {
		case ok != (expectedInv != nil):
			result = multierror.Append(result, errors.Wrapf(ErrMismatch, "%s range, %d bits, modulus %v: invertibility of %v wrong",
				c.RangeName(), c.Bits(), n, x))
		case ok:
			check("inverse", inv, expectedInv, x)
		}
	}
	return result.ErrorOrNil()
}
