// Package errors carries coded errors from the generator through the
// orchestrator to the gRPC boundary.
//
// Each layer wraps what it receives and the code survives the trip:
//
//	// generator
//	return nil, errors.InvalidArgumentf("unknown adjective: %s", input.Adjective)
//
//	// orchestrator
//	if err != nil {
//		return nil, errors.Wrap(err, "failed to generate equipment")
//	}
//
//	// handler
//	return nil, errors.ToGRPCError(err)
//
// Config and input checks collect every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("HistoryLimit", cfg.HistoryLimit, 1, 100, vb)
//	errors.ValidateEnum("LogFormat", cfg.LogFormat, []string{"json", "text"}, vb)
//	return vb.Build()
//
// Wrapping a context.Canceled or context.DeadlineExceeded keeps that meaning
// so clients see CANCELED or DEADLINE_EXCEEDED rather than INTERNAL.
package errors
