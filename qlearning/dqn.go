// Package qlearning implements the DQN agent behind the autopilot: a
// small two-layer network over a 7-feature state (food direction
// flags plus relative danger flags) choosing between the three
// relative actions turn-left, straight and turn-right.
package qlearning

import (
	"encoding/gob"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

func init() {
	gob.Register(&tensor.Dense{})
	gob.Register(map[string]*tensor.Dense{})
}

const (
	// Learning parameters
	Gamma          = 0.95
	InitialEpsilon = 1.0
	EpsilonDecay   = 0.99
	MinEpsilon     = 0.01

	// Network layout
	BatchSize        = 32
	ReplayBufferSize = 5000
	HiddenLayerSize  = 12
	InputFeatures    = 7 // 4 food direction flags + 3 relative danger flags
	OutputActions    = 3 // turn left, straight, turn right
	GradientClip     = 0.5

	// WeightsFile is where trained weights persist between sessions.
	WeightsFile = "data/dqn_weights.gob"
)

// Transition is a single environment step stored for replay.
type Transition struct {
	State     []float64
	Action    int
	Reward    float64
	NextState []float64
	Done      bool
}

// ReplayBuffer holds past transitions for batch training.
type ReplayBuffer struct {
	buffer   []Transition
	maxSize  int
	position int
	size     int
}

// NewReplayBuffer creates an empty ring buffer of the given capacity.
func NewReplayBuffer(maxSize int) *ReplayBuffer {
	return &ReplayBuffer{
		buffer:  make([]Transition, maxSize),
		maxSize: maxSize,
	}
}

// Add stores a transition, overwriting the oldest once full.
func (b *ReplayBuffer) Add(t Transition) {
	b.buffer[b.position] = t
	b.position = (b.position + 1) % b.maxSize
	if b.size < b.maxSize {
		b.size++
	}
}

// Len returns the number of stored transitions.
func (b *ReplayBuffer) Len() int {
	return b.size
}

// Sample returns a random batch of stored transitions.
func (b *ReplayBuffer) Sample(batchSize int) []Transition {
	if batchSize > b.size {
		batchSize = b.size
	}

	batch := make([]Transition, batchSize)
	for i := 0; i < batchSize; i++ {
		batch[i] = b.buffer[rand.Intn(b.size)]
	}
	return batch
}

// DQN is the value network.
type DQN struct {
	g      *gorgonia.ExprGraph
	w1, w2 *gorgonia.Node
	b1, b2 *gorgonia.Node
	vm     gorgonia.VM
	solver gorgonia.Solver
}

// NewDQN builds a fresh network with Glorot-initialised weights.
func NewDQN() *DQN {
	g := gorgonia.NewGraph()

	w1 := gorgonia.NewMatrix(g,
		tensor.Float64,
		gorgonia.WithShape(InputFeatures, HiddenLayerSize),
		gorgonia.WithInit(gorgonia.GlorotU(1.0)))

	b1 := gorgonia.NewMatrix(g,
		tensor.Float64,
		gorgonia.WithShape(1, HiddenLayerSize),
		gorgonia.WithInit(gorgonia.Zeroes()))

	w2 := gorgonia.NewMatrix(g,
		tensor.Float64,
		gorgonia.WithShape(HiddenLayerSize, OutputActions),
		gorgonia.WithInit(gorgonia.GlorotU(1.0)))

	b2 := gorgonia.NewMatrix(g,
		tensor.Float64,
		gorgonia.WithShape(1, OutputActions),
		gorgonia.WithInit(gorgonia.Zeroes()))

	dqn := &DQN{
		g:      g,
		w1:     w1,
		w2:     w2,
		b1:     b1,
		b2:     b2,
		solver: gorgonia.NewAdamSolver(gorgonia.WithL2Reg(1e-6)),
	}

	dqn.vm = gorgonia.NewTapeMachine(g)
	return dqn
}

// Forward runs a batch of states through the network and returns the
// Q-values, OutputActions per state.
func (dqn *DQN) Forward(states []float64) ([]float64, error) {
	batchSize := len(states) / InputFeatures
	if batchSize == 0 {
		batchSize = 1
	}

	g := dqn.g

	backing := make([]float64, len(states))
	copy(backing, states)

	statesTensor := tensor.New(tensor.WithBacking(backing), tensor.WithShape(batchSize, InputFeatures))
	statesNode := gorgonia.NodeFromAny(g, statesTensor)

	// Biases are (1, n); broadcast them over the batch with a column
	// of ones.
	expandBias := func(bias *gorgonia.Node, size int) (*gorgonia.Node, error) {
		ones := tensor.New(tensor.WithShape(size, 1), tensor.WithBacking(make([]float64, size)))
		for i := range ones.Data().([]float64) {
			ones.Data().([]float64)[i] = 1.0
		}
		onesNode := gorgonia.NodeFromAny(g, ones)
		return gorgonia.Mul(onesNode, bias)
	}

	h1 := gorgonia.Must(gorgonia.Mul(statesNode, dqn.w1))
	expandedBias1 := gorgonia.Must(expandBias(dqn.b1, batchSize))
	h1 = gorgonia.Must(gorgonia.Add(h1, expandedBias1))
	h1 = gorgonia.Must(gorgonia.Rectify(h1))

	output := gorgonia.Must(gorgonia.Mul(h1, dqn.w2))
	expandedBias2 := gorgonia.Must(expandBias(dqn.b2, batchSize))
	pred := gorgonia.Must(gorgonia.Add(output, expandedBias2))

	if err := dqn.vm.RunAll(); err != nil {
		return nil, fmt.Errorf("forward pass error: %v", err)
	}
	dqn.vm.Reset()

	predValue := pred.Value()
	if predValue == nil {
		return nil, fmt.Errorf("nil prediction value")
	}

	predTensor, ok := predValue.(*tensor.Dense)
	if !ok {
		return nil, fmt.Errorf("invalid prediction tensor type")
	}

	predictions := make([]float64, batchSize*OutputActions)
	copy(predictions, predTensor.Data().([]float64))

	return predictions, nil
}

// Agent is the DQN agent: online network, target network and replay
// buffer, with an epsilon-greedy policy that decays per episode.
type Agent struct {
	dqn             *DQN
	targetDQN       *DQN
	replayBuffer    *ReplayBuffer
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	InitialEpsilon  float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int
}

// NewAgent creates an agent, resuming from saved weights when the
// weights file exists.
func NewAgent(learningRate, discount, epsilon float64) *Agent {
	agent := &Agent{
		dqn:            NewDQN(),
		targetDQN:      NewDQN(),
		replayBuffer:   NewReplayBuffer(ReplayBufferSize),
		LearningRate:   learningRate,
		Discount:       discount,
		Epsilon:        epsilon,
		InitialEpsilon: epsilon,
		MinEpsilon:     MinEpsilon,
		EpsilonDecay:   EpsilonDecay,
	}

	if err := agent.LoadWeights(WeightsFile); err != nil {
		log.Printf("dqn: starting from fresh weights: %v", err)
	}

	return agent
}

// GetAction picks an action with an epsilon-greedy policy.
func (a *Agent) GetAction(state []float64, numActions int) int {
	if a.Epsilon > a.MinEpsilon {
		a.Epsilon = a.InitialEpsilon * math.Pow(a.EpsilonDecay, float64(a.TrainingEpisode))
		if a.Epsilon < a.MinEpsilon {
			a.Epsilon = a.MinEpsilon
		}
	}

	if rand.Float64() < a.Epsilon {
		return rand.Intn(numActions)
	}

	qValues, err := a.dqn.Forward(state)
	if err != nil {
		return rand.Intn(numActions)
	}

	maxQ := math.Inf(-1)
	bestAction := 0
	for action, qValue := range qValues {
		if qValue > maxQ {
			maxQ = qValue
			bestAction = action
		}
	}

	return bestAction
}

// GetQValues exposes the raw Q-values for one state.
func (a *Agent) GetQValues(state []float64) ([]float64, error) {
	return a.dqn.Forward(state)
}

// Update records the transition and trains on a sampled batch once
// the buffer has enough history.
func (a *Agent) Update(state []float64, action int, reward float64, nextState []float64, numActions int) {
	a.replayBuffer.Add(Transition{
		State:     state,
		Action:    action,
		Reward:    reward,
		NextState: nextState,
	})

	if a.replayBuffer.Len() < BatchSize {
		return
	}

	a.trainOnBatch(a.replayBuffer.Sample(BatchSize))
}

// trainOnBatch runs one gradient step on a batch of transitions.
func (a *Agent) trainOnBatch(batch []Transition) {
	g := a.dqn.g
	states := make([]float64, 0, len(batch)*InputFeatures)
	nextStates := make([]float64, 0, len(batch)*InputFeatures)
	actions := make([]int, 0, len(batch))
	rewards := make([]float64, 0, len(batch))

	for _, transition := range batch {
		states = append(states, transition.State...)
		nextStates = append(nextStates, transition.NextState...)
		actions = append(actions, transition.Action)
		rewards = append(rewards, transition.Reward)
	}

	currentQValues, err := a.dqn.Forward(states)
	if err != nil {
		return
	}

	nextQValues, err := a.targetDQN.Forward(nextStates)
	if err != nil {
		return
	}

	// Bellman targets: only the taken action's value moves.
	targetQValues := make([]float64, len(batch)*OutputActions)
	copy(targetQValues, currentQValues)

	for i := 0; i < len(batch); i++ {
		maxQ := math.Inf(-1)
		for j := 0; j < OutputActions; j++ {
			if nextQValues[i*OutputActions+j] > maxQ {
				maxQ = nextQValues[i*OutputActions+j]
			}
		}

		targetQValues[i*OutputActions+actions[i]] = rewards[i] + a.Discount*maxQ
	}

	targetTensor := tensor.New(tensor.WithBacking(targetQValues), tensor.WithShape(len(batch), OutputActions))
	targetNode := gorgonia.NodeFromAny(g, targetTensor)

	currentTensor := tensor.New(tensor.WithBacking(currentQValues), tensor.WithShape(len(batch), OutputActions))
	currentNode := gorgonia.NodeFromAny(g, currentTensor)

	// MSE loss
	diff := gorgonia.Must(gorgonia.Sub(currentNode, targetNode))
	loss := gorgonia.Must(gorgonia.Mean(gorgonia.Must(gorgonia.Square(diff))))

	nodes := gorgonia.Nodes{a.dqn.w1, a.dqn.w2, a.dqn.b1, a.dqn.b2}
	gorgonia.Grad(loss, nodes...)

	if err := a.dqn.vm.RunAll(); err != nil {
		log.Printf("dqn: backprop: %v", err)
		return
	}

	grads := gorgonia.NodesToValueGrads(nodes)

	for _, grad := range grads {
		if grad == nil {
			continue
		}
		if t, ok := grad.(tensor.Tensor); ok {
			data := t.Data().([]float64)
			for i := range data {
				if math.Abs(data[i]) > GradientClip {
					data[i] *= GradientClip / math.Abs(data[i])
				}
			}
		}
	}

	a.dqn.solver.Step(grads)
	a.dqn.vm.Reset()

	copyWeights(a.targetDQN, a.dqn)
}

// copyWeights soft-updates the target network toward the online one.
func copyWeights(target, source *DQN) {
	const tau = 0.001
	copyTensor(target.w1.Value().(*tensor.Dense), source.w1.Value().(*tensor.Dense), tau)
	copyTensor(target.w2.Value().(*tensor.Dense), source.w2.Value().(*tensor.Dense), tau)
	copyTensor(target.b1.Value().(*tensor.Dense), source.b1.Value().(*tensor.Dense), tau)
	copyTensor(target.b2.Value().(*tensor.Dense), source.b2.Value().(*tensor.Dense), tau)
}

func copyTensor(target, source *tensor.Dense, tau float64) {
	targetData := target.Data().([]float64)
	sourceData := source.Data().([]float64)
	for i := range targetData {
		targetData[i] = tau*sourceData[i] + (1-tau)*targetData[i]
	}
}

// IncrementEpisode advances the episode counter driving epsilon decay.
func (a *Agent) IncrementEpisode() {
	a.TrainingEpisode++
	if a.TrainingEpisode < 1000 {
		a.Epsilon = math.Max(0.1, a.InitialEpsilon*math.Exp(-float64(a.TrainingEpisode)/500))
	} else {
		a.Epsilon = math.Max(0.05, a.InitialEpsilon*math.Exp(-float64(a.TrainingEpisode)/1000))
	}
}

// SaveWeights writes the online network's weights with gob.
func (a *Agent) SaveWeights(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create weights file: %v", err)
	}
	defer f.Close()

	weights := map[string]*tensor.Dense{
		"w1": a.dqn.w1.Value().(*tensor.Dense),
		"w2": a.dqn.w2.Value().(*tensor.Dense),
		"b1": a.dqn.b1.Value().(*tensor.Dense),
		"b2": a.dqn.b2.Value().(*tensor.Dense),
	}

	if err := gob.NewEncoder(f).Encode(weights); err != nil {
		return fmt.Errorf("failed to encode weights: %v", err)
	}

	return nil
}

// LoadWeights restores both networks from a weights file. A missing
// file is not an error; the agent simply starts fresh.
func (a *Agent) LoadWeights(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open weights file: %v", err)
	}
	defer f.Close()

	var weights map[string]*tensor.Dense
	if err := gob.NewDecoder(f).Decode(&weights); err != nil {
		return fmt.Errorf("failed to decode weights: %v", err)
	}

	for name, node := range map[string]*gorgonia.Node{
		"w1": a.dqn.w1, "w2": a.dqn.w2, "b1": a.dqn.b1, "b2": a.dqn.b2,
	} {
		if w, ok := weights[name]; ok {
			tensor.Copy(node.Value().(*tensor.Dense), w)
		}
	}
	for name, node := range map[string]*gorgonia.Node{
		"w1": a.targetDQN.w1, "w2": a.targetDQN.w2, "b1": a.targetDQN.b1, "b2": a.targetDQN.b2,
	} {
		if w, ok := weights[name]; ok {
			tensor.Copy(node.Value().(*tensor.Dense), w)
		}
	}

	return nil
}
