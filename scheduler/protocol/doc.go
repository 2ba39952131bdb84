/*
Package protocol speaks the simulator's line oriented request/response
protocol. Every command is one line; every reply is one line. Multi-row
replies are read by acknowledging each row with OK until a "." line.

	client                         simulator
	HELO                    ->     OK
	AUTH alice              ->     OK
	REDY                    ->     JOBN 37 0 653 3 700 3800 | NONE | ERR ...
	RESC All                ->     DATA
	OK                      ->     small 0 2 0 4 4096 40
	OK                      ->     .
	LSTJ small 0            ->     DATA
	OK                      ->     0 2 37 653 3 700 3800
	OK                      ->     .
	SCHD 0 small 0          ->     OK | ERR: server incapable of running the job
	QUIT                    ->     QUIT

Nothing here is retried; any failure ends the exchange with a typed error.
*/
package protocol
