package envmap

// these functions are only exported when running tests

var Unlerp = unlerp
