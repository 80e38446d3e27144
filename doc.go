// Package autoenc provides training of stacked denoising autoencoders for
// unsupervised feature learning, with optional supervised fine-tuning through
// a softmax classifier head.
//
// Unit Autoencoders
//
// The basic building block is the Unit: a single hidden-layer autoencoder that
// is trained to reconstruct its own input. Corruption (Gaussian noise or
// dropout) can be applied to the input during training to make the unit
// denoising:
//
//		u := autoenc.NewUnit("u0", 784, 256).
//			Noise(noise.Gaussian(0.3)).
//			Activation(activations.Sigmoid())
//
//		loss, err := u.Fit(trainX, autoenc.FitArgs{Epochs: 20, ModelPath: "cache/u0"})
//
// Defaults for the hidden activation, initializer, optimizer, weight penalty,
// and learning rate are set by the subpackages activations, initializers,
// optimizers, penalties, and hyperparams when they are imported. A Unit built
// without those imports (and without explicit settings) will report an error
// through its Error() method.
//
// Stacking
//
// Trained units are stacked into a deeper model; each stacked layer starts
// from a copy of the unit's trained hidden weights. The stack is topped either
// with a reconstruction output layer or with a softmax classifier for
// fine-tuning, and then finalized:
//
//		s := autoenc.NewStack("sae")
//		s.StackUnit(u0, "h0").StackUnit(u1, "h1")
//		s.StackClassifier("out", 10)
//		if err := s.Finalize(nil); err != nil {
//			return err
//		}
//
// Training, Evaluation, and Checkpoints
//
// Fitting runs shuffled minibatch gradient descent for a number of epochs,
// writes scalar loss summaries as CSV, and saves a checkpoint directory when
// a model path is given. Checkpoints are reloaded with LoadUnit and LoadStack,
// provided the subpackages that registered the relevant types have been
// imported. Evaluation selects any of the loss, the reconstruction loss, the
// topmost hidden outputs, and the model outputs, in the order requested.
package autoenc
