package http

// SignInForTest expone signIn a los tests externos del paquete.
var SignInForTest = signIn
