package numerology

// ReduceKeepMaster folds n down by repeated digit sums until it is a single
// digit or one of the master numbers 11, 22, 33. Input 0 stays 0, which is
// how unparseable dates flow through the rest of the engine.
func ReduceKeepMaster(n int) int {
	for n > 9 && n != 11 && n != 22 && n != 33 {
		n = digitSum(n)
	}
	return n
}

// ReduceToSingle folds n to a single digit with no master-number exception.
// Challenge numbers are computed entirely in this mode.
func ReduceToSingle(n int) int {
	for n > 9 {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
