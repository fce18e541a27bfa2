package vo

// simpleGreeting 是 SimpleFunction 返回的固定问候语。
const simpleGreeting = "Hello from Rust"

// SimpleFunction returns a greeting.
func SimpleFunction() string {
	return simpleGreeting
}

// User 表示一个具名的人，构造后不可变。
type User struct {
	name string
}

// NewUser creates a new user. The name is stored verbatim.
func NewUser(name string) User {
	return User{name: name}
}

// Name 返回构造时传入的原始名称。
func (u User) Name() string {
	return u.name
}

// Greet returns a greeting.
func (u User) Greet() string {
	return "Hello, " + u.name + "!"
}
