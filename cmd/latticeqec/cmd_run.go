// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AleutianAI/LatticeQEC/pkg/ux"
	"github.com/AleutianAI/LatticeQEC/services/decoder"
	"github.com/AleutianAI/LatticeQEC/services/session"
)

var (
	runSize       int
	runCode       string
	runErrorRate  float64
	runMaxBPIters int
	runDecoder    string
	runErrorModel string
	runDeformed   bool
	runQuiet      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sample errors remotely, decode them, and report the outcome",
	Long: "Builds a lattice, asks the remote service for a random error sample,\n" +
		"then asks it to decode the resulting syndrome and applies the returned\n" +
		"correction. A zero residual syndrome means the decoder cleared every\n" +
		"check; whether it also avoided a logical flip is up to the decoder.",
	Example: "  latticeqec run --size 5 --p 0.08\n" +
		"  latticeqec run --size 7 --decoder UnionFindDecoder --error-model PauliErrorModel",
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runSize, "size", 4, "Lattice size L")
	runCmd.Flags().StringVar(&runCode, "code", decoder.CodeToric2D, "Code family to build")
	runCmd.Flags().Float64Var(&runErrorRate, "p", 0.1, "Physical error rate for sampling")
	runCmd.Flags().IntVar(&runMaxBPIters, "max-bp-iter", 10, "Belief-propagation iteration cap")
	runCmd.Flags().StringVar(&runDecoder, "decoder", decoder.DecoderBPOSD, "Decoder identifier")
	runCmd.Flags().StringVar(&runErrorModel, "error-model", decoder.ErrorModelPauli, "Error-model identifier")
	runCmd.Flags().BoolVar(&runDeformed, "deformed", false, "Request the deformed variant of the error model")
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "Skip the lattice renders, print only the outcome")
}

// newRemoteServices wires the HTTP client against the configured service
// URL, with the stabilizer cache in front of code construction.
func newRemoteServices() (session.Services, func(), error) {
	client := decoder.NewHTTPClient(viper.GetString("server_url"))
	cache, err := session.NewStabilizerCache(session.CacheConfig{
		Path:     viper.GetString("cache_dir"),
		InMemory: viper.GetString("cache_dir") == "",
	}, client)
	if err != nil {
		return session.Services{}, nil, fmt.Errorf("open stabilizer cache: %w", err)
	}
	svc := session.Services{
		Source:  cache,
		Sampler: client,
		Decoder: client,
	}
	return svc, func() { _ = cache.Close() }, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	svc, closeCache, err := newRemoteServices()
	if err != nil {
		return err
	}
	defer closeCache()

	s := session.New(svc)
	s.SetParams(session.Params{
		ErrorRate:  runErrorRate,
		MaxBPIters: runMaxBPIters,
		Deformed:   runDeformed,
		Decoder:    runDecoder,
		ErrorModel: runErrorModel,
	})

	ctx := cmd.Context()
	if err := s.Rebuild(ctx, runSize, runCode); err != nil {
		return fmt.Errorf("build lattice: %w", err)
	}
	if err := s.SampleAndApply(ctx); err != nil {
		return fmt.Errorf("sample errors: %w", err)
	}
	sampled, err := s.Snapshot()
	if err != nil {
		return err
	}
	if !runQuiet {
		ux.Title("Sampled errors")
		renderSummary(sampled)
	}

	corr, err := s.Decode(ctx)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	decoded, err := s.Snapshot()
	if err != nil {
		return err
	}
	if !runQuiet {
		ux.Title("After correction")
		renderSummary(decoded)
	}

	corrWeight := 0
	for i := range corr.X {
		if corr.X[i] {
			corrWeight++
		}
		if corr.Z[i] {
			corrWeight++
		}
	}
	residual := 0
	for _, on := range decoded.Syndrome {
		if on {
			residual++
		}
	}
	if residual == 0 {
		ux.Success(fmt.Sprintf("syndrome cleared (correction weight %d)", corrWeight))
		return nil
	}
	ux.Warning(fmt.Sprintf("residual syndrome weight %d after correction", residual))
	return nil
}
