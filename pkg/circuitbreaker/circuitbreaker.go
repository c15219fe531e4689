// Package circuitbreaker 为可选的外部依赖（Redis缓存、RabbitMQ）提供熔断保护
//
// 状态转换：
//
//	CLOSED --连续失败达到阈值--> OPEN --Timeout到期--> HALF_OPEN
//	HALF_OPEN --探测成功--> CLOSED
//	HALF_OPEN --探测失败--> OPEN
//
// 熔断期间Execute直接返回ErrOpenState，不调用下游，
// 请求不会被宕机的Redis拖到ReadTimeout。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断中，请求未执行
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	// MaxRequests 半开状态允许通过的探测请求数，0按1处理
	MaxRequests uint32
	// Interval CLOSED状态下统计窗口长度，到期清零计数；0表示不清零
	Interval time.Duration
	// Timeout OPEN状态持续时间
	Timeout time.Duration
	// ReadyToTrip 失败后调用，返回true则打开熔断器
	// 为空时连续失败5次熔断
	ReadyToTrip func(counts Counts) bool
}

// Counts 当前窗口内的统计
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

func (c *Counts) onRequest() {
	c.Requests++
}

func (c *Counts) onSuccess() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) onFailure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

func (c *Counts) clear() {
	*c = Counts{}
}

// CircuitBreaker 熔断器，并发安全
type CircuitBreaker struct {
	name          string
	maxRequests   uint32
	interval      time.Duration
	timeout       time.Duration
	readyToTrip   func(counts Counts) bool
	onStateChange func(name string, from, to State)

	mu         sync.Mutex
	state      State
	generation uint64 // 每次切换状态递增，丢弃跨状态返回的结果
	counts     Counts
	expiry     time.Time
	now        func() time.Time
}

// New 创建熔断器
//
//	cb := circuitbreaker.New("redis", circuitbreaker.Config{
//	    Timeout: 30 * time.Second,
//	    ReadyToTrip: func(c circuitbreaker.Counts) bool {
//	        return c.ConsecutiveFailures >= 5
//	    },
//	})
func New(name string, cfg Config) *CircuitBreaker {
	cb := &CircuitBreaker{
		name:        name,
		maxRequests: cfg.MaxRequests,
		interval:    cfg.Interval,
		timeout:     cfg.Timeout,
		readyToTrip: cfg.ReadyToTrip,
		now:         time.Now,
	}
	if cb.maxRequests == 0 {
		cb.maxRequests = 1
	}
	if cb.readyToTrip == nil {
		cb.readyToTrip = func(c Counts) bool { return c.ConsecutiveFailures >= 5 }
	}
	cb.resetWindow(cb.now())
	return cb
}

// OnStateChange 注册状态变化回调（日志、指标）
// 回调在持有锁时执行，不能再调用熔断器的方法
func (cb *CircuitBreaker) OnStateChange(fn func(name string, from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Execute 在熔断器保护下执行req
// 熔断中返回ErrOpenState，否则原样返回req的错误
// req发生panic时记为一次失败后继续向上抛出
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	defer func() {
		if e := recover(); e != nil {
			cb.afterRequest(generation, false)
			panic(e)
		}
	}()

	err = req()
	cb.afterRequest(generation, err == nil)
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, _ := cb.currentState(cb.now())
	return state
}

// Counts 当前窗口统计
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.counts
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(cb.now())
	switch {
	case state == StateOpen:
		return generation, ErrOpenState
	case state == StateHalfOpen && cb.counts.Requests >= cb.maxRequests:
		return generation, ErrOpenState
	}

	cb.counts.onRequest()
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	state, generation := cb.currentState(now)
	if generation != before {
		return
	}

	if success {
		cb.counts.onSuccess()
		if state == StateHalfOpen {
			cb.setState(StateClosed, now)
		}
		return
	}

	cb.counts.onFailure()
	switch state {
	case StateClosed:
		if cb.readyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		cb.setState(StateOpen, now)
	}
}

// currentState 处理到期：CLOSED窗口到期清零，OPEN到期转半开
func (cb *CircuitBreaker) currentState(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.resetWindow(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state

	switch state {
	case StateClosed:
		cb.resetWindow(now)
	case StateOpen:
		cb.generation++
		cb.counts.clear()
		cb.expiry = now.Add(cb.timeout)
	case StateHalfOpen:
		cb.generation++
		cb.counts.clear()
		cb.expiry = time.Time{}
	}

	if cb.onStateChange != nil {
		cb.onStateChange(cb.name, prev, state)
	}
}

func (cb *CircuitBreaker) resetWindow(now time.Time) {
	cb.generation++
	cb.counts.clear()
	if cb.interval > 0 {
		cb.expiry = now.Add(cb.interval)
	} else {
		cb.expiry = time.Time{}
	}
}
