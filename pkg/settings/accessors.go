package settings

// Int16 returns the setting key as an int16.
func Int16(g Getter, key string) (int16, error) { return AsType[int16](g, key) }

// Int16OrDefault returns the setting key as an int16, or 0.
func Int16OrDefault(g Getter, key string) (int16, error) { return AsTypeOrDefault[int16](g, key) }

// Int32 returns the setting key as an int32.
func Int32(g Getter, key string) (int32, error) { return AsType[int32](g, key) }

// Int32OrDefault returns the setting key as an int32, or 0.
func Int32OrDefault(g Getter, key string) (int32, error) { return AsTypeOrDefault[int32](g, key) }

// Int64 returns the setting key as an int64.
func Int64(g Getter, key string) (int64, error) { return AsType[int64](g, key) }

// Int64OrDefault returns the setting key as an int64, or 0.
func Int64OrDefault(g Getter, key string) (int64, error) { return AsTypeOrDefault[int64](g, key) }

// Float32 returns the setting key as a float32.
func Float32(g Getter, key string) (float32, error) { return AsType[float32](g, key) }

// Float32OrDefault returns the setting key as a float32, or 0.
func Float32OrDefault(g Getter, key string) (float32, error) {
	return AsTypeOrDefault[float32](g, key)
}

// Float64 returns the setting key as a float64.
func Float64(g Getter, key string) (float64, error) { return AsType[float64](g, key) }

// Float64OrDefault returns the setting key as a float64, or 0.
func Float64OrDefault(g Getter, key string) (float64, error) {
	return AsTypeOrDefault[float64](g, key)
}

// Bool returns the setting key as a bool.
func Bool(g Getter, key string) (bool, error) { return AsType[bool](g, key) }

// BoolOrDefault returns the setting key as a bool, or false.
func BoolOrDefault(g Getter, key string) (bool, error) { return AsTypeOrDefault[bool](g, key) }
