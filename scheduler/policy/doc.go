/*
Package policy chooses a server for one job.

Every policy sees the job, the current snapshot, the initial snapshot of the
session and the type order, and returns a Decision or ErrNoCapacity.

  largest  Largest-Always: server 0 of the type with the most cores in the
           initial snapshot.
  ff       First-Fit: first sufficient server in type order; otherwise the
           first currently active server that was sufficient initially.
  bf       Best-Fit: least surplus cores, ties to the earliest available;
           otherwise the same over currently active servers on initial figures.
  wf       Worst-Fit: most surplus cores among idle/active servers, then among
           the rest; otherwise over currently active servers on initial figures.
  bfp      Best-Cost: Best-Fit, unless its answer would have to wait. Then the
           immediately available server with the shortest queue is used if
           that queue is shorter than Long.

Feasibility is either full (cores, memory and disk) or cores only.
*/
package policy
