package container

import "container/heap"

// item 优先队列中单个元素
type item[T any] struct {
	Value    T       // 元素的值
	Priority float64 // 优先级（越小越优先）
	seq      int     // 加入序号
}

// priorityQueue 实现heap.Interface的最小堆
type priorityQueue[T any] []*item[T]

func (pq priorityQueue[T]) Len() int { return len(pq) }

func (pq priorityQueue[T]) Less(i, j int) bool {
	if pq[i].Priority == pq[j].Priority {
		// 优先级相同时先加入者优先，保证结果确定
		return pq[i].seq < pq[j].seq
	}
	return pq[i].Priority < pq[j].Priority
}

func (pq priorityQueue[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue[T]) Push(x any) {
	*pq = append(*pq, x.(*item[T]))
}

func (pq *priorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // 避免内存泄漏
	*pq = old[0 : n-1]
	return it
}

// PriorityQueue 优先队列
// 功能：按优先级取出元素的最小堆，优先级相同时按加入顺序取出
// 说明：先Push批量加入再Heapify，之后用HeapPop按序取出
type PriorityQueue[T any] struct {
	queue priorityQueue[T]
	seq   int // 加入序号，作为同优先级元素的次序
}

// NewPriorityQueue 创建优先队列
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{queue: make(priorityQueue[T], 0)}
}

// Len 获取当前队列长度
func (q *PriorityQueue[T]) Len() int {
	return len(q.queue)
}

// Push 加入元素（简单添加），添加后需要调用Heapify()
func (q *PriorityQueue[T]) Push(value T, priority float64) {
	q.queue = append(q.queue, q.newItem(value, priority))
}

// Heapify 重新构建堆
func (q *PriorityQueue[T]) Heapify() {
	heap.Init(&q.queue)
}

// HeapPop 弹出优先级数值最小的元素（堆操作）
func (q *PriorityQueue[T]) HeapPop() (value T, priority float64) {
	it := heap.Pop(&q.queue).(*item[T])
	return it.Value, it.Priority
}

func (q *PriorityQueue[T]) newItem(value T, priority float64) *item[T] {
	it := &item[T]{Value: value, Priority: priority, seq: q.seq}
	q.seq++
	return it
}
