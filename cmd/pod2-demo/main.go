// Command pod2-demo wires pod2-go end-to-end: it runs the ZuKYC pipeline
// scenario, verifies the resulting MainPod, and prints its public
// statements. A thin main that constructs the library's top-level types
// and reports the outcome.
package main

import (
	"log/slog"
	"os"

	"github.com/pod-network/pod2-go/examples/zukyc"
	"github.com/pod-network/pod2-go/pkg/pod2"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	result, err := zukyc.Build()
	if err != nil {
		logger.Error("failed to build zukyc main pod", "error", err)
		os.Exit(1)
	}

	if err := pod2.VerifyAll([]pod2.Pod{result.GovID, result.PayStub, result.MainPod}); err != nil {
		logger.Error("verification failed", "error", err)
		os.Exit(1)
	}

	logger.Info("zukyc main pod verified", "id", result.MainPod.Id())
	for i, s := range result.MainPod.PubStatements() {
		logger.Info("public statement", "index", i, "predicate", s.Predicate.String())
	}
}
