package autoenc

import (
	"bufio"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// main_file should not be a number
const main_file string = "main"

type layerParams struct {
	Weights [][]float64
	Biases  []float64
}

func (m *model) printMain(dirPath string) error {
	f, err := os.Create(dirPath + "/" + main_file + ".txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create file %s in %s\n", main_file, dirPath)
	}

	defer f.Close()

	sup := "0"
	if m.supervised {
		sup = "1"
	}

	lines := []string{
		m.kind,
		m.name,
		strconv.Itoa(len(m.layers)),
		m.cf.TypeString(),
		sup,
		m.lr.TypeString(),
	}

	if _, err = f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return errors.Wrapf(err, "Couldn't write main file in %s\n", dirPath)
	}

	return nil
}

func (l *layer) printLayer(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make directory %q\n", dirPath)
	}

	f, err := os.Create(dirPath + "/layer.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create file 'layer.txt' in %q\n", dirPath)
	}

	defer f.Close()

	cor := "-"
	if l.cor != nil {
		cor = l.cor.TypeString() + " " + strconv.FormatFloat(l.cor.Param(), 'g', -1, 64)
	}

	pen := "-"
	if l.pen != nil {
		pen = l.pen.TypeString() + " " + strconv.FormatFloat(l.pen.Param(), 'g', -1, 64)
	}

	lines := []string{
		l.name,
		strconv.Itoa(l.in) + " " + strconv.Itoa(l.out),
		l.act.TypeString(),
		cor,
		pen,
		l.opt.TypeString(),
	}

	if _, err = f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return errors.Wrapf(err, "Couldn't write 'layer.txt' in %q\n", dirPath)
	}

	wf, err := os.Create(dirPath + "/weights.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create file 'weights.txt' in %q\n", dirPath)
	}

	defer wf.Close()

	enc := json.NewEncoder(wf)
	if err = enc.Encode(layerParams{l.Weights, l.Biases}); err != nil {
		return errors.Wrapf(err, "Couldn't encode weights to JSON in %q\n", dirPath)
	}

	if err = l.opt.Save(dirPath + "/opt"); err != nil {
		return errors.Wrapf(err, "Couldn't save optimizer after saving layer\n")
	}

	return nil
}

// save writes the model to the specified path, creating a directory (with
// permissions 0700) to contain it. If overwrite is false and the directory
// already exists, save returns an error.
func (m *model) save(dirPath string, overwrite bool) error {
	if _, err := os.Stat(dirPath); err == nil {
		if !overwrite {
			return errors.Errorf("Can't save model, folder already exists and overwrite is not enabled")
		}

		if err = os.RemoveAll(dirPath); err != nil {
			return errors.Errorf("Can't save model, couldn't remove pre-existing folder to overwrite")
		}
	}

	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make directory to save model\n")
	}

	if err := m.printMain(dirPath); err != nil {
		return err
	}

	if err := m.lr.Save(dirPath + "/hp"); err != nil {
		return errors.Wrapf(err, "Couldn't save learning-rate schedule\n")
	}

	for i, l := range m.layers {
		if err := l.printLayer(dirPath + "/" + strconv.Itoa(i)); err != nil {
			return errors.Wrapf(err, "Couldn't save layer %q (id: %d)\n", l.name, i)
		}
	}

	return nil
}

// Save writes the Unit to a checkpoint directory. The Unit must have been
// built (by Fit or a previous Restore) first.
func (u *Unit) Save(dirPath string, overwrite bool) error {
	if err := u.build(); err != nil {
		return err
	}

	return u.save(dirPath, overwrite)
}

// Save writes the Stack to a checkpoint directory. The Stack must have been
// finalized first.
func (s *Stack) Save(dirPath string, overwrite bool) error {
	if !s.finalized {
		if s.err != nil {
			return s.err
		}
		return ErrNotFinalized
	}

	return s.save(dirPath, overwrite)
}

// loadModel reads the checkpoint main file and all layers into a bare model.
func loadModel(dirPath string) (*model, error) {
	if _, err := os.Stat(dirPath); err != nil {
		return nil, errors.Errorf("Can't load model, containing directory %q does not exist", dirPath)
	}

	main, err := os.Open(dirPath + "/" + main_file + ".txt")
	if err != nil {
		return nil, errors.Errorf("Can't load model, main file does not exist")
	}
	defer main.Close()

	formatErr := errors.Errorf("Can't load model, main file is incompatible")
	sc := bufio.NewScanner(main)

	m := new(model)

	if !sc.Scan() {
		return nil, formatErr
	}
	m.kind = sc.Text()

	if !sc.Scan() {
		return nil, formatErr
	}
	m.name = sc.Text()

	var numLayers int
	{
		if !sc.Scan() {
			return nil, formatErr
		}
		if numLayers, err = strconv.Atoi(sc.Text()); err != nil || numLayers < 1 {
			return nil, formatErr
		}
	}

	{
		if !sc.Scan() {
			return nil, formatErr
		}
		cf, ok := costFuncs[sc.Text()]
		if !ok {
			return nil, errors.Errorf("Can't load model, no CostFunction registered for %q (import the costfuncs subpackage)", sc.Text())
		}
		m.cf = cf()
	}

	if !sc.Scan() {
		return nil, formatErr
	}
	m.supervised = sc.Text() == "1"

	{
		if !sc.Scan() {
			return nil, formatErr
		}
		hp, ok := hyperParams[sc.Text()]
		if !ok {
			return nil, errors.Errorf("Can't load model, no HyperParameter registered for %q (import the hyperparams subpackage)", sc.Text())
		}
		m.lr = hp()
		if err = m.lr.Load(dirPath + "/hp"); err != nil {
			return nil, errors.Wrapf(err, "Can't load model, failed to load learning-rate schedule\n")
		}
	}

	m.layers = make([]*layer, numLayers)
	for id := range m.layers {
		l, err := remakeLayer(dirPath + "/" + strconv.Itoa(id))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't load model: failed to load layer (id: %d)\n", id)
		}

		if id > 0 && m.layers[id-1].out != l.in {
			return nil, errors.Errorf("Can't load model, layer %d does not fit below layer %d", id-1, id)
		}

		m.layers[id] = l
	}

	return m, nil
}

func remakeLayer(dirPath string) (*layer, error) {
	f, err := os.Open(dirPath + "/layer.txt")
	if err != nil {
		return nil, errors.Errorf("File 'layer.txt' doesn't exist in %q", dirPath)
	}
	defer f.Close()

	l := new(layer)

	sc := bufio.NewScanner(f)
	formatErr := errors.Errorf("File 'layer.txt' in %q has wrong format", dirPath)

	if !sc.Scan() {
		return nil, formatErr
	}
	l.name = sc.Text()

	{
		if !sc.Scan() {
			return nil, formatErr
		}
		dims := strings.Fields(sc.Text())
		if len(dims) != 2 {
			return nil, formatErr
		}
		if l.in, err = strconv.Atoi(dims[0]); err != nil || l.in < 1 {
			return nil, formatErr
		}
		if l.out, err = strconv.Atoi(dims[1]); err != nil || l.out < 1 {
			return nil, formatErr
		}
	}

	{
		if !sc.Scan() {
			return nil, formatErr
		}
		act, ok := activations[sc.Text()]
		if !ok {
			return nil, errors.Errorf("No Activation registered for %q (import the activations subpackage)", sc.Text())
		}
		l.act = act()
	}

	{
		if !sc.Scan() {
			return nil, formatErr
		}
		if sc.Text() != "-" {
			fields := strings.Fields(sc.Text())
			if len(fields) != 2 {
				return nil, formatErr
			}

			cor, ok := corruptors[fields[0]]
			if !ok {
				return nil, errors.Errorf("No Corruptor registered for %q (import the noise subpackage)", fields[0])
			}

			param, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, formatErr
			}

			l.cor = cor(param)
		}
	}

	{
		if !sc.Scan() {
			return nil, formatErr
		}
		if sc.Text() != "-" {
			fields := strings.Fields(sc.Text())
			if len(fields) != 2 {
				return nil, formatErr
			}

			pen, ok := penalties[fields[0]]
			if !ok {
				return nil, errors.Errorf("No Penalty registered for %q (import the penalties subpackage)", fields[0])
			}

			param, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, formatErr
			}

			l.pen = pen(param)
		}
	}

	{
		if !sc.Scan() {
			return nil, formatErr
		}
		opt, ok := optimizers[sc.Text()]
		if !ok {
			return nil, errors.Errorf("No Optimizer registered for %q (import the optimizers subpackage)", sc.Text())
		}
		l.opt = opt()
		if err = l.opt.Load(dirPath + "/opt"); err != nil {
			return nil, errors.Wrapf(err, "Failed to load optimizer state\n")
		}
	}

	wf, err := os.Open(dirPath + "/weights.txt")
	if err != nil {
		return nil, errors.Errorf("File 'weights.txt' doesn't exist in %q", dirPath)
	}
	defer wf.Close()

	var params layerParams
	dec := json.NewDecoder(wf)
	if err = dec.Decode(&params); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode weights JSON\n")
	}

	if len(params.Weights) != l.out || len(params.Biases) != l.out {
		return nil, errors.Errorf("Weight dimensions don't match layer dimensions (%d rows, %d biases, layer size %d)",
			len(params.Weights), len(params.Biases), l.out)
	}
	for v := range params.Weights {
		if len(params.Weights[v]) != l.in {
			return nil, errors.Errorf("Weight row %d has %d values, layer has %d inputs", v, len(params.Weights[v]), l.in)
		}
	}

	l.Weights = params.Weights
	l.Biases = params.Biases
	l.resetGrads()

	return l, nil
}

// LoadUnit reconstructs a Unit from a checkpoint directory previously written
// by Save (or by Fit with a ModelPath). The subpackages that registered the
// checkpoint's activation, noise, penalty, optimizer, cost-function, and
// hyperparameter types must have been imported.
func LoadUnit(dirPath string) (*Unit, error) {
	m, err := loadModel(dirPath)
	if err != nil {
		return nil, err
	}

	if m.kind != "unit" {
		return nil, errors.Errorf("Can't load unit from %q, checkpoint holds a %q", dirPath, m.kind)
	} else if len(m.layers) != 2 {
		return nil, errors.Errorf("Can't load unit from %q, expected 2 layers (have %d)", dirPath, len(m.layers))
	} else if m.layers[0].in != m.layers[1].out {
		return nil, errors.Errorf("Can't load unit from %q, output width does not match input width", dirPath)
	}

	u := &Unit{
		model:    *m,
		nInputs:  m.layers[0].in,
		nNeurons: m.layers[0].out,
		built:    true,
		trained:  true,
	}

	return u, nil
}

// LoadStack reconstructs a Stack from a checkpoint directory previously
// written by Save (or by Fit with a ModelPath). The same registration
// requirements as LoadUnit apply.
func LoadStack(dirPath string) (*Stack, error) {
	m, err := loadModel(dirPath)
	if err != nil {
		return nil, err
	}

	if m.kind != "stack" {
		return nil, errors.Errorf("Can't load stack from %q, checkpoint holds a %q", dirPath, m.kind)
	} else if len(m.layers) < 2 {
		return nil, errors.Errorf("Can't load stack from %q, expected at least 2 layers (have %d)", dirPath, len(m.layers))
	}

	s := &Stack{
		model:     *m,
		nInputs:   m.layers[0].in,
		hasHead:   true,
		finalized: true,
	}

	return s, nil
}

// restoreParams copies the trained parameters (weights, biases, optimizer
// state) of src into m. The architectures must match layer-for-layer.
func (m *model) restoreParams(src *model) error {
	if len(src.layers) != len(m.layers) {
		return SizeMismatchError{len(m.layers), len(src.layers), "restored layers"}
	}

	for i, l := range m.layers {
		sl := src.layers[i]
		if sl.in != l.in || sl.out != l.out {
			return SizeMismatchError{l.in, sl.in, "restored layer " + strconv.Itoa(i)}
		}
	}

	for i, l := range m.layers {
		l.copyParamsFrom(src.layers[i])
		l.opt = src.layers[i].opt
	}

	m.lr = src.lr
	return nil
}

// Restore replaces the Unit's parameters with those of a checkpoint. The
// checkpointed architecture must match the Unit's. Any parameters the Unit
// already had are replaced.
func (u *Unit) Restore(dirPath string) error {
	if err := u.build(); err != nil {
		return err
	}

	src, err := LoadUnit(dirPath)
	if err != nil {
		return errors.Wrapf(err, "Restoring unit %q failed\n", u.name)
	}

	if err = u.restoreParams(&src.model); err != nil {
		return errors.Wrapf(err, "Restoring unit %q failed\n", u.name)
	}

	u.trained = true
	return nil
}

// RestoreAndEval restores the Unit's parameters from a checkpoint and then
// evaluates the requested variables against the rows of x.
func (u *Unit) RestoreAndEval(dirPath string, x *mat.Dense, vars ...Var) ([]Value, error) {
	if err := u.Restore(dirPath); err != nil {
		return nil, err
	}

	return u.Eval(x, vars...)
}

// Restore replaces the Stack's parameters with those of a checkpoint. The
// Stack must be finalized, and the checkpointed architecture must match.
func (s *Stack) Restore(dirPath string) error {
	if !s.finalized {
		if s.err != nil {
			return s.err
		}
		return ErrNotFinalized
	}

	src, err := LoadStack(dirPath)
	if err != nil {
		return errors.Wrapf(err, "Restoring stack %q failed\n", s.name)
	}

	if src.supervised != s.supervised {
		return errors.Errorf("Restoring stack %q failed: checkpointed head does not match", s.name)
	}

	if err = s.restoreParams(&src.model); err != nil {
		return errors.Wrapf(err, "Restoring stack %q failed\n", s.name)
	}

	return nil
}

// RestoreAndEval restores the Stack's parameters from a checkpoint and then
// evaluates the requested variables against the rows of x.
func (s *Stack) RestoreAndEval(dirPath string, x, y *mat.Dense, vars ...Var) ([]Value, error) {
	if err := s.Restore(dirPath); err != nil {
		return nil, err
	}

	return s.Eval(x, y, vars...)
}
