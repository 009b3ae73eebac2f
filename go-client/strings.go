package goredis

// Get retrieves the value of a key.
func Get(key string) (interface{}, error) {
	return mustGetClient().SendCommand("GET", key)
}

// Set sets the value of a key.
func Set(key string, value interface{}) (interface{}, error) {
	return mustGetClient().SendCommand("SET", key, value)
}
