// Package solid runs the SOLID example pairs as named demos.
//
// Each demo owns one principle and can run its violating design, its
// corrected design, or both:
//
//	c := solid.New(solid.WithOutput(os.Stdout))
//	if err := c.Run(solid.VariantBoth, "lsp", "dip"); err != nil {
//	    log.Fatal(err)
//	}
//
// Failures raised on purpose by a violating design (domain.ErrNotImplemented)
// are reported and logged, never returned. Any other error stops the run.
package solid
