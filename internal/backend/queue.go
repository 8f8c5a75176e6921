package backend

// DefaultCapacity 命令队列和结果队列的默认容量
const DefaultCapacity = 32

// NewCommandQueue 创建有界命令队列，capacity <= 0 时使用默认值
func NewCommandQueue(capacity int) chan Command {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return make(chan Command, capacity)
}

// NewResultQueue 创建有界结果队列，capacity <= 0 时使用默认值
func NewResultQueue(capacity int) chan Result {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return make(chan Result, capacity)
}

// BestEffortSend 非阻塞发送，队列已满时直接丢弃并返回 false。
// 向已关闭的队列发送会 panic，调用方负责只在队列打开时调用。
func BestEffortSend[T any](ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		// 队列已满，丢弃
		return false
	}
}

// TryReceive 非阻塞接收。
// ok 表示取到了值；closed 表示队列已关闭且为空。
func TryReceive[T any](ch <-chan T) (v T, ok bool, closed bool) {
	select {
	case v, ok = <-ch:
		return v, ok, !ok
	default:
		return v, false, false
	}
}
