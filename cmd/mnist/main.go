// Trains a stacked denoising autoencoder on MNIST: two unit autoencoders are
// pretrained layer-wise, stacked under a softmax classifier, and the whole
// stack is fine-tuned on the labels.
//
// Requires the four usual MNIST files (train-images-idx3-ubyte.gz and
// friends) in the data directory.
package main

import (
	"flag"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	ae "github.com/HiYKY/autoenc"
	"github.com/HiYKY/autoenc/activations"
	"github.com/HiYKY/autoenc/noise"
	"github.com/HiYKY/autoenc/optimizers"

	_ "github.com/HiYKY/autoenc/costfuncs"
	_ "github.com/HiYKY/autoenc/hyperparams"
	_ "github.com/HiYKY/autoenc/initializers"
	_ "github.com/HiYKY/autoenc/penalties"
)

var (
	dataDir    = flag.String("data", "resources/mnist", "directory holding the gzipped MNIST files")
	saveDir    = flag.String("save", "resources/mnist_save", "directory to checkpoint the stack to")
	logDir     = flag.String("logs", "resources/logs", "directory for training summaries")
	plotDir    = flag.String("plots", "resources/plots", "directory for hidden-neuron plots")
	hidden1    = flag.Int("hidden1", 256, "neurons in the first unit autoencoder")
	hidden2    = flag.Int("hidden2", 128, "neurons in the second unit autoencoder")
	stddev     = flag.Float64("stddev", 0.3, "gaussian noise applied to the first unit's inputs")
	dropRate   = flag.Float64("drop", 0.3, "dropout applied to the second unit's inputs")
	preEpochs  = flag.Int("pre-epochs", 10, "pretraining epochs per unit")
	tuneEpochs = flag.Int("tune-epochs", 10, "fine-tuning epochs for the stack")
	batchSize  = flag.Int("batch", 128, "minibatch size")
	seed       = flag.Int64("seed", 42, "seed for shuffling, noise, and dropout")
)

// printResult is given to FitArgs.Update to log status and test lines.
func printResult(r ae.Result) {
	if r.IsTest {
		fmt.Printf("epoch %d: test cost %g, %.2f%% correct\n", r.Epoch, r.Cost, 100*r.Correct)
	} else {
		fmt.Printf("iteration %d (epoch %d): cost %g\n", r.Iteration, r.Epoch, r.Cost)
	}
}

func pretrain(name string, x *mat.Dense, nNeurons int, cor ae.Corruptor) *ae.Unit {
	_, cols := x.Dims()
	u := ae.NewUnit(name, cols, nNeurons).
		Noise(cor).
		Activation(activations.Sigmoid())

	fmt.Printf("Pretraining %q...\n", name)
	startTime := time.Now()

	loss, err := u.Fit(x, ae.FitArgs{
		Epochs:    *preEpochs,
		BatchSize: *batchSize,
		Seed:      *seed,
		LogDir:    *logDir,
		Update:    printResult,
	})
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("Done in %v seconds, final loss %g\n", time.Since(startTime).Seconds(), loss)

	if err = u.PlotHiddenNeurons(*plotDir + "/" + name); err != nil {
		panic(err.Error())
	}

	return u
}

func main() {
	flag.Parse()

	fmt.Println("Loading MNIST...")
	trainX, trainY, testX, testY, err := datasets(*dataDir)
	if err != nil {
		panic(err.Error())
	}

	// layer-wise pretraining: the second unit learns to reconstruct the
	// hidden representation of the first
	u1 := pretrain("ae1", trainX, *hidden1, noise.Gaussian(*stddev))

	h1, err := u1.HiddenOutputs(trainX)
	if err != nil {
		panic(err.Error())
	}

	u2 := pretrain("ae2", h1, *hidden2, noise.Dropout(*dropRate))

	fmt.Println("Stacking...")
	s := ae.NewStack("sae").
		StackUnit(u1, "").
		StackUnit(u2, "").
		StackClassifier("", numClasses)
	if err = s.Finalize(optimizers.Adam); err != nil {
		panic(err.Error())
	}

	fmt.Println("Fine-tuning...")
	startTime := time.Now()

	loss, err := s.Fit(trainX, trainY, ae.FitArgs{
		Epochs:    *tuneEpochs,
		BatchSize: *batchSize,
		Seed:      *seed,
		LogDir:    *logDir,
		TestX:     testX,
		TestY:     testY,
		IsCorrect: ae.CorrectHighest,
		Update:    printResult,
		ModelPath: *saveDir,
		Overwrite: true,
	})
	if err != nil {
		panic(err.Error())
	}

	since := time.Since(startTime)
	fmt.Printf("Done fine-tuning! It took %v seconds (%v minutes), final loss %g\n",
		since.Seconds(), since.Minutes(), loss)

	cost, correct, err := s.Test(testX, testY, ae.CorrectHighest)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("Test cost %g, %.2f%% correct\n", cost, 100*correct)
	fmt.Printf("Saved stack to %q\n", *saveDir)
}
