/*
Package cli provides the dsclient command line: running a scheduling
session against ds-sim, driving the simulator by hand, and listing the
placement policies. The simulator is reached through a Dialer
(common/dialer).
*/
package cli
