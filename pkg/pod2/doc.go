// Package pod2 provides the public API for pod2-go, a framework for
// building and composing authenticated data objects ("PODs") whose
// contents can be reasoned about by cryptographic proofs.
//
// # Architecture
//
// pod2-go uses a hybrid public/private architecture:
//
//   - pkg/pod2/: public API (this package)
//   - internal/pod2/: private implementation (not importable)
//
// # Quick start
//
// Signing a dictionary and deriving a MainPod:
//
//	signer := pod2.NewMockSigner()
//	govID, err := signer.Sign(pod2.DefaultParams(), map[string]pod2.Value{
//		"idNumber": pod2.StringValue("4242424242"),
//	})
//
//	builder, err := pod2.NewBuilder(pod2.DefaultParams())
//	builder.AddSignedPodInput(govID)
//	// ... add operations ...
//	compiled, err := builder.Compile()
//	prover := pod2.NewMockProver()
//	mainPod, err := prover.Prove(pod2.DefaultParams(), pod2.MainPodInputs{
//		SignedPods: []pod2.Pod{govID},
//		Compiled:   compiled,
//	})
//
// Verifying a batch of independently constructed PODs concurrently:
//
//	err := pod2.VerifyAll(pods)
package pod2
