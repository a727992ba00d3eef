package calculator

// calculator 的接口定义

// Writer 接收快照，调用期间场数据不会被修改，返回后不得再持有数组
type Writer interface {
	Write(step int, electric, magnetic []float64) error
}

// WriterFunc 把函数适配为 Writer
type WriterFunc func(step int, electric, magnetic []float64) error

func (f WriterFunc) Write(step int, electric, magnetic []float64) error {
	return f(step, electric, magnetic)
}

// 驱动器状态
type State int

const (
	NotStarted State = iota
	Running
	Finished
	Failed
)

var stateNames = [...]string{"NotStarted", "Running", "Finished", "Failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
